package entry

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry represents a single normalized time tracking record.
// Stop is never before Start and Minutes is never negative.
type Entry struct {
	Start   time.Time
	Stop    time.Time
	Minutes int
	Action  string
	Comment string
}

// record is the persisted JSON shape of an Entry. Timestamps are kept as
// local wall-clock strings so stored data stays readable and stable.
type record struct {
	Start   string `json:"start"`
	Stop    string `json:"stop"`
	Minutes int    `json:"minutes"`
	Action  string `json:"action"`
	Comment string `json:"comment"`
}

// MarshalJSON implements json.Marshaler
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Start:   FormatTimestamp(e.Start),
		Stop:    FormatTimestamp(e.Stop),
		Minutes: e.Minutes,
		Action:  e.Action,
		Comment: e.Comment,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
// Timestamps are interpreted in the local timezone.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	start, err := ParseTimestamp(r.Start, time.Local)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	stop, err := ParseTimestamp(r.Stop, time.Local)
	if err != nil {
		return fmt.Errorf("stop: %w", err)
	}

	*e = Entry{
		Start:   start,
		Stop:    stop,
		Minutes: r.Minutes,
		Action:  r.Action,
		Comment: r.Comment,
	}
	return nil
}

// DisplayAction returns the action label with any decorative prefix removed
func (e Entry) DisplayAction() string {
	return StripDecoration(e.Action)
}
