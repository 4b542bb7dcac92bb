// Package storage provides the key-value persistence port and its adapters.
// The entry store writes whole values under a small set of keys, so the
// port only needs get, set and delete.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EntriesKey holds the JSON-serialized entry collection
	EntriesKey = "mal-v1"
	// ShowEntriesKey holds the "entries panel visible" preference ("1" or "0")
	ShowEntriesKey = "mal-show-entries"
)

// ErrNotFound is returned by Get when the key has no value
var ErrNotFound = errors.New("key not found")

// KV is a keyed blob store
type KV interface {
	// Get returns the value stored under key, or ErrNotFound
	Get(key string) ([]byte, error)
	// Set replaces the value stored under key
	Set(key string, value []byte) error
	// Delete removes key; deleting a missing key is not an error
	Delete(key string) error
	// Close releases any underlying resources
	Close() error
}

// Backend names accepted by Open
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the KV adapter for the named backend rooted at dir
func Open(backend, dir string) (KV, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFileKV(dir)
	case BackendSQLite:
		return OpenSQLiteKV(dir)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (valid: %s, %s, %s)", backend, BackendFile, BackendSQLite, BackendMemory)
	}
}

// validateKey rejects keys that cannot be used as file names
func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}
