package service

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/storage"
	"github.com/xolan/actionlog/internal/store"
)

// ErrNoBackups is returned when there is nothing to restore from
var ErrNoBackups = errors.New("no backups available")

// EntryService provides operations on the entry collection
type EntryService struct {
	kv      storage.KV
	store   *store.Store
	config  config.Config
	restore store.Outcome
}

// NewEntryService creates an EntryService and restores the persisted
// collection from kv. A failed restore is kept for RestoreOutcome.
func NewEntryService(kv storage.KV, cfg config.Config) *EntryService {
	s := &EntryService{
		kv:     kv,
		store:  store.New(kv),
		config: cfg,
	}
	s.restore = s.store.Restore()
	return s
}

// Store returns the underlying entry store
func (s *EntryService) Store() *store.Store {
	return s.store
}

// RestoreOutcome reports how loading the persisted state went
func (s *EntryService) RestoreOutcome() store.Outcome {
	return s.restore
}

// Create normalizes input and appends the resulting entry.
// Validation failures are returned as errors; persistence failures are
// reported in the result's Outcome and the entry is still kept in memory.
func (s *EntryService) Create(in AddInput, now time.Time) (CreateResult, error) {
	now = now.In(s.config.Location())

	if in.Length != 0 && strings.TrimSpace(in.Stop) == "" {
		rawStart := strings.TrimSpace(in.Start)
		start, stop, err := entry.AdjustLength(rawStart, in.Length, now)
		if err != nil {
			return CreateResult{}, err
		}
		in.Start, in.Stop = start, stop
	}

	e, err := entry.Normalize(in.Input, now)
	if err != nil {
		return CreateResult{}, err
	}

	return CreateResult{Entry: e, Outcome: s.store.Append(e)}, nil
}

// Count returns the number of entries
func (s *EntryService) Count() int {
	return s.store.Len()
}

// List renders the collection using the configured display layout
func (s *EntryService) List() ListResult {
	return ListResult{
		Rows:  slices.Collect(s.store.Rows(s.config.DisplayLayout)),
		Total: s.store.TotalMinutes(),
	}
}

// ClearAll empties the collection after confirm agrees
func (s *EntryService) ClearAll(confirm func() bool) (bool, store.Outcome) {
	return s.store.ClearAll(confirm)
}

// ShowDetails reports the persisted entries-panel preference
func (s *EntryService) ShowDetails() bool {
	return s.store.ShowDetails()
}

// ToggleDetails flips the entries-panel preference
func (s *EntryService) ToggleDetails() (bool, store.Outcome) {
	return s.store.ToggleDetails()
}

// ListBackups returns the available backups of the entry collection
func (s *EntryService) ListBackups() ([]storage.BackupInfo, error) {
	return storage.ListBackups(s.kv, storage.EntriesKey)
}

// RestoreBackup replaces the collection with backup n and reloads it
func (s *EntryService) RestoreBackup(n int) (store.Outcome, error) {
	backups, err := s.ListBackups()
	if err != nil {
		return store.Outcome{}, fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return store.Outcome{}, ErrNoBackups
	}

	if err := storage.RestoreBackup(s.kv, storage.EntriesKey, n); err != nil {
		return store.Outcome{}, err
	}

	s.restore = s.store.Restore()
	return s.restore, nil
}
