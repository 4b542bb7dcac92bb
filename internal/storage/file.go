package storage

import (
	"os"
	"path/filepath"

	"github.com/xolan/actionlog/internal/osutil"
)

// FileKV stores each key as a file in a directory
type FileKV struct {
	dir string
}

// NewFileKV creates a FileKV rooted at dir.
// An empty dir resolves to the application config directory.
// The directory is created if it doesn't exist.
func NewFileKV(dir string) (*FileKV, error) {
	if dir == "" {
		var err error
		dir, err = osutil.AppDir()
		if err != nil {
			return nil, err
		}
	} else if err := osutil.EnsureDir(dir); err != nil {
		return nil, err
	}
	return &FileKV{dir: dir}, nil
}

// Dir returns the directory holding the key files
func (s *FileKV) Dir() string {
	return s.dir
}

// Path returns the file path backing key
func (s *FileKV) Path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get implements KV
func (s *FileKV) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set implements KV.
// Uses atomic write pattern (write to temp file, then rename) for safety.
func (s *FileKV) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	target := s.Path(key)
	tmpFile := target + ".tmp"
	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if _, err := file.Write(value); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpFile)
		return err
	}

	// Close temp file before rename
	if err := file.Close(); err != nil {
		_ = os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, target)
}

// Delete implements KV
func (s *FileKV) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Close implements KV
func (s *FileKV) Close() error {
	return nil
}
