// Package store owns the entry collection: it restores it at startup,
// appends and clears it, persists every change through a storage.KV and
// renders it as display rows and CSV.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/export"
	"github.com/xolan/actionlog/internal/logging"
	"github.com/xolan/actionlog/internal/storage"
)

// ErrPersistence wraps every failure to read or write the persisted state
var ErrPersistence = errors.New("persistence failure")

// Outcome reports whether a mutation reached persistent storage.
// The in-memory collection is updated regardless; callers decide whether
// to surface Err.
type Outcome struct {
	Persisted bool
	Err       error
}

// OK reports whether the operation completed without a persistence failure
func (o Outcome) OK() bool {
	return o.Err == nil
}

func persisted() Outcome {
	return Outcome{Persisted: true}
}

func failed(op string, err error) Outcome {
	logging.Debugf("store: %s: %v", op, err)
	return Outcome{Err: fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)}
}

// DisplayRow is one rendered row of the entries table
type DisplayRow struct {
	Index      int // 1-based position in the collection
	ShortStart string
	ShortStop  string
	Minutes    int
	Action     string // decorative prefix stripped
	Comment    string
}

// Store holds the ordered entry collection and the details preference
type Store struct {
	kv          storage.KV
	entries     []entry.Entry
	showDetails bool

	// unreadable is set when the persisted collection could not be loaded.
	// It is backed up before the first write replaces it.
	unreadable bool
}

// New creates an empty Store persisting through kv. Call Restore to load
// previously saved state.
func New(kv storage.KV) *Store {
	return &Store{kv: kv, entries: []entry.Entry{}}
}

// Restore loads the persisted collection and details preference.
// A missing key is not a failure. On a read or parse failure the
// collection is left empty and the failure is reported in the Outcome.
func (s *Store) Restore() Outcome {
	s.entries = []entry.Entry{}
	s.showDetails = false
	s.unreadable = false

	var errs []error

	if raw, err := s.kv.Get(storage.ShowEntriesKey); err == nil {
		s.showDetails = string(raw) == "1"
	} else if !errors.Is(err, storage.ErrNotFound) {
		errs = append(errs, fmt.Errorf("reading %s: %w", storage.ShowEntriesKey, err))
	}

	raw, err := s.kv.Get(storage.EntriesKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		s.unreadable = true
		errs = append(errs, fmt.Errorf("reading %s: %w", storage.EntriesKey, err))
	case len(raw) > 0:
		var loaded []entry.Entry
		if err := json.Unmarshal(raw, &loaded); err != nil {
			s.unreadable = true
			errs = append(errs, fmt.Errorf("parsing %s: %w", storage.EntriesKey, err))
		} else if loaded != nil {
			s.entries = loaded
		}
	}

	if len(errs) > 0 {
		return failed("restore", errors.Join(errs...))
	}
	return persisted()
}

// Append adds e to the end of the collection and persists the collection.
// The in-memory append always happens; the Outcome reports persistence.
func (s *Store) Append(e entry.Entry) Outcome {
	s.entries = append(s.entries, e)
	return s.save()
}

// ClearAll empties the collection once confirm returns true.
// With an empty collection nothing happens and confirm is not called.
// The previous collection is backed up before it is overwritten.
// Returns whether the collection was cleared.
func (s *Store) ClearAll(confirm func() bool) (bool, Outcome) {
	if len(s.entries) == 0 {
		return false, persisted()
	}
	if confirm != nil && !confirm() {
		return false, persisted()
	}

	if err := storage.Backup(s.kv, storage.EntriesKey); err != nil {
		logging.Debugf("store: backup before clear: %v", err)
	} else {
		s.unreadable = false
	}

	s.entries = []entry.Entry{}
	return true, s.save()
}

// Len returns the number of entries
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the collection in insertion order
func (s *Store) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// TotalMinutes returns the sum of all entry lengths
func (s *Store) TotalMinutes() int {
	total := 0
	for _, e := range s.entries {
		total += e.Minutes
	}
	return total
}

// Rows returns the collection as display rows, in insertion order.
// The sequence is lazy and can be iterated any number of times; each
// iteration reflects the collection at that moment.
func (s *Store) Rows(layout string) iter.Seq[DisplayRow] {
	return func(yield func(DisplayRow) bool) {
		for i, e := range s.entries {
			row := DisplayRow{
				Index:      i + 1,
				ShortStart: entry.FormatShort(e.Start, layout),
				ShortStop:  entry.FormatShort(e.Stop, layout),
				Minutes:    e.Minutes,
				Action:     e.DisplayAction(),
				Comment:    e.Comment,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// CSV renders the collection as a CSV document
func (s *Store) CSV() string {
	return export.FormatCSV(s.entries)
}

// ShowDetails reports whether the entries panel should be visible
func (s *Store) ShowDetails() bool {
	return s.showDetails
}

// SetShowDetails updates and persists the details preference
func (s *Store) SetShowDetails(show bool) Outcome {
	s.showDetails = show
	value := "0"
	if show {
		value = "1"
	}
	if err := s.kv.Set(storage.ShowEntriesKey, []byte(value)); err != nil {
		return failed("save preference", err)
	}
	return persisted()
}

// ToggleDetails flips the details preference and returns the new value
func (s *Store) ToggleDetails() (bool, Outcome) {
	out := s.SetShowDetails(!s.showDetails)
	return s.showDetails, out
}

func (s *Store) save() Outcome {
	if s.unreadable {
		if err := storage.Backup(s.kv, storage.EntriesKey); err != nil {
			return failed("back up unreadable entries", err)
		}
		s.unreadable = false
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return failed("encode entries", err)
	}
	if err := s.kv.Set(storage.EntriesKey, data); err != nil {
		return failed("save entries", err)
	}
	return persisted()
}
