package entry

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors returned by Normalize
var (
	ErrMissingAction    = errors.New("action cannot be empty")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Input is the raw, possibly incomplete form input for a new entry
type Input struct {
	Start   string
	Stop    string
	Action  string
	Comment string
}

// Normalize converts raw form input into a well-formed Entry.
//
// Missing timestamps are filled in rather than rejected: with neither set
// both become now, with one set the other mirrors it. A stop earlier than
// the start is swapped. Only an empty action or an unparsable timestamp is
// an error. Timestamps are parsed in now's location.
func Normalize(in Input, now time.Time) (Entry, error) {
	rawStart := strings.TrimSpace(in.Start)
	rawStop := strings.TrimSpace(in.Stop)

	switch {
	case rawStart == "" && rawStop == "":
		rawStart = FormatTimestamp(now)
		rawStop = rawStart
	case rawStart == "":
		rawStart = rawStop
	case rawStop == "":
		rawStop = rawStart
	}

	if strings.TrimSpace(in.Action) == "" {
		return Entry{}, ErrMissingAction
	}

	start, err := ParseTimestamp(rawStart, now.Location())
	if err != nil {
		return Entry{}, fmt.Errorf("%w: start: %v", ErrInvalidTimestamp, err)
	}
	stop, err := ParseTimestamp(rawStop, now.Location())
	if err != nil {
		return Entry{}, fmt.Errorf("%w: stop: %v", ErrInvalidTimestamp, err)
	}

	if stop.Before(start) {
		start, stop = stop, start
	}

	return Entry{
		Start:   start,
		Stop:    stop,
		Minutes: MinutesBetween(start, stop),
		Action:  in.Action,
		Comment: in.Comment,
	}, nil
}

// MinutesBetween returns the length from start to stop rounded to whole minutes
func MinutesBetween(start, stop time.Time) int {
	return int(stop.Sub(start).Round(time.Minute) / time.Minute)
}

// AddMinutes returns start shifted by delta minutes. Negative deltas are allowed.
func AddMinutes(start time.Time, delta int) time.Time {
	return start.Add(time.Duration(delta) * time.Minute)
}

// AdjustLength computes form values for a start time and a signed length in minutes.
// An empty rawStart defaults to now. The result is not clamped: a negative
// delta yields a stop before the start, which Normalize swaps at save time.
func AdjustLength(rawStart string, delta int, now time.Time) (start, stop string, err error) {
	base := truncateToMinute(now)
	if strings.TrimSpace(rawStart) != "" {
		base, err = ParseTimestamp(rawStart, now.Location())
		if err != nil {
			return "", "", fmt.Errorf("%w: start: %v", ErrInvalidTimestamp, err)
		}
	}
	return FormatTimestamp(base), FormatTimestamp(AddMinutes(base, delta)), nil
}
