package storage

// MemoryKV is a map-backed KV. Values are copied on the way in and out.
type MemoryKV struct {
	data map[string][]byte

	// Fail, when set, is returned by every operation
	Fail error
}

// NewMemoryKV creates an empty MemoryKV
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get implements KV
func (m *MemoryKV) Get(key string) ([]byte, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set implements KV
func (m *MemoryKV) Set(key string, value []byte) error {
	if m.Fail != nil {
		return m.Fail
	}
	if err := validateKey(key); err != nil {
		return err
	}
	m.data[key] = append([]byte{}, value...)
	return nil
}

// Delete implements KV
func (m *MemoryKV) Delete(key string) error {
	if m.Fail != nil {
		return m.Fail
	}
	delete(m.data, key)
	return nil
}

// Close implements KV
func (m *MemoryKV) Close() error {
	return nil
}
