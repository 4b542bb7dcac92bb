package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xolan/actionlog/internal/osutil"
	_ "modernc.org/sqlite"
)

// DatabaseFile is the SQLite database file name inside the data directory
const DatabaseFile = "actionlog.db"

const createKVTable = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB
)`

// SQLiteKV stores keys as rows of a single table
type SQLiteKV struct {
	db *sql.DB
}

// OpenSQLiteKV opens (or creates) the database in dir.
// An empty dir resolves to the application config directory.
// If dir is ":memory:", uses an in-memory database.
func OpenSQLiteKV(dir string) (*SQLiteKV, error) {
	path := dir
	if dir != ":memory:" {
		if dir == "" {
			var err error
			dir, err = osutil.AppDir()
			if err != nil {
				return nil, err
			}
		} else if err := osutil.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
		path = filepath.Join(dir, DatabaseFile)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps ":memory:" databases consistent across calls
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting WAL mode: %w", err)
		}
	}

	if _, err := db.Exec(createKVTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteKV{db: db}, nil
}

// Get implements KV
func (s *SQLiteKV) Get(key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return value, nil
}

// Set implements KV
func (s *SQLiteKV) Set(key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}

// Delete implements KV
func (s *SQLiteKV) Delete(key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	return nil
}

// Close implements KV
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
