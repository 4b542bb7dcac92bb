package storage

import (
	"errors"
	"fmt"
)

const (
	// BackupSuffix is appended to a key to name its backups
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backups to keep per key
	MaxBackupCount = 3
)

// BackupKey returns the key of the backup with the given rotation number.
// Backups are named with the format: <key>.bak.N where N is the rotation number.
// Lower numbers are more recent (e.g., .bak.1 is the most recent backup).
func BackupKey(key string, n int) string {
	return fmt.Sprintf("%s%s.%d", key, BackupSuffix, n)
}

// rotateBackups shifts existing backups to make room for a new one.
// It moves .bak.2 -> .bak.3 and .bak.1 -> .bak.2, dropping the oldest.
// Missing backups are skipped.
func rotateBackups(kv KV, key string) error {
	if err := kv.Delete(BackupKey(key, MaxBackupCount)); err != nil {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		value, err := kv.Get(BackupKey(key, i))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if err := kv.Set(BackupKey(key, i+1), value); err != nil {
			return err
		}
		if err := kv.Delete(BackupKey(key, i)); err != nil {
			return err
		}
	}

	return nil
}

// Backup copies the current value of key to .bak.1 before a destructive change.
// Existing backups are rotated. If key has no value, nothing happens.
func Backup(kv KV, key string) error {
	value, err := kv.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := rotateBackups(kv, key); err != nil {
		return err
	}

	return kv.Set(BackupKey(key, 1), value)
}

// BackupInfo describes an available backup
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Key    string // The key holding the backup
	Size   int    // Size of the backed up value in bytes
}

// ListBackups returns the backups of key sorted by recency, most recent first.
// Returns an empty slice if no backups exist.
func ListBackups(kv KV, key string) ([]BackupInfo, error) {
	backups := []BackupInfo{}
	for i := 1; i <= MaxBackupCount; i++ {
		value, err := kv.Get(BackupKey(key, i))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		backups = append(backups, BackupInfo{
			Number: i,
			Key:    BackupKey(key, i),
			Size:   len(value),
		})
	}
	return backups, nil
}

// RestoreBackup replaces the value of key with backup n.
// The current value is backed up first, so the restore itself can be undone.
func RestoreBackup(kv KV, key string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	value, err := kv.Get(BackupKey(key, n))
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("backup %d does not exist", n)
	}
	if err != nil {
		return err
	}

	if err := Backup(kv, key); err != nil {
		return err
	}

	return kv.Set(key, value)
}
