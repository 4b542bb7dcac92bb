package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xolan/actionlog/internal/entry"
)

// ErrNothingToExport is returned when the collection is empty
var ErrNothingToExport = errors.New("no entries to export")

// Format is a document format
type Format string

// Supported formats
const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat validates a format name (case-insensitive)
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	default:
		return "", fmt.Errorf("unsupported format %q (valid: csv, xlsx)", name)
	}
}

// ContentType returns the MIME type of documents in format f
func (f Format) ContentType() string {
	if f == XLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Document is a rendered export ready to be written somewhere
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// Build renders entries in format f and names the document for time t.
// Returns ErrNothingToExport for an empty collection.
func Build(f Format, prefix string, entries []entry.Entry, t time.Time) (Document, error) {
	if len(entries) == 0 {
		return Document{}, ErrNothingToExport
	}

	var data []byte
	switch f {
	case CSV:
		data = []byte(FormatCSV(entries))
	case XLSX:
		var err error
		data, err = FormatXLSX(entries)
		if err != nil {
			return Document{}, err
		}
	default:
		return Document{}, fmt.Errorf("unsupported format %q", f)
	}

	return Document{
		Name:        Filename(prefix, string(f), t),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}
