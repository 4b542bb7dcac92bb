package entry

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the canonical minute-precision wall-clock layout used for
// storage, form fields and CSV export (e.g. "2024-01-15T10:30").
const Layout = "2006-01-02T15:04"

// DefaultDisplayLayout is the short layout used for display rows
const DefaultDisplayLayout = "Jan 02 15:04"

// acceptedLayouts are tried in order when parsing a timestamp.
// RFC 3339 is accepted last so data written by other tools still loads.
var acceptedLayouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// FormatTimestamp formats t in the canonical layout
func FormatTimestamp(t time.Time) string {
	return t.Format(Layout)
}

// FormatShort formats t for display using the given layout.
// An empty layout falls back to DefaultDisplayLayout.
func FormatShort(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDisplayLayout
	}
	return t.Format(layout)
}

// ParseTimestamp parses a wall-clock timestamp in loc and truncates it to the minute.
//
// Valid inputs:
//   - "2024-01-15T10:30" (canonical)
//   - "2024-01-15T10:30:45"
//   - "2024-01-15 10:30"
//   - "2024-01-15T10:30:00+02:00" (RFC 3339, converted to loc)
func ParseTimestamp(input string, loc *time.Location) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("timestamp cannot be empty (use format YYYY-MM-DDTHH:MM, e.g., 2024-01-15T10:30)")
	}
	if loc == nil {
		loc = time.Local
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.ParseInLocation(layout, input, loc); err == nil {
			return truncateToMinute(t), nil
		}
	}

	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return truncateToMinute(t.In(loc)), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp '%s' (use format YYYY-MM-DDTHH:MM, e.g., 2024-01-15T10:30)", input)
}

// truncateToMinute drops seconds and sub-second precision while keeping
// the wall clock in t's own location.
func truncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}
