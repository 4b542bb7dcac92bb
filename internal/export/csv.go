// Package export renders the entry collection into documents (CSV, XLSX)
// and delivers them to an export location or a share target.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/xolan/actionlog/internal/entry"
)

// Header is the CSV header row. Field names and order are fixed so that
// new exports stay compatible with earlier ones.
var Header = []string{"start", "stop", "length_minutes", "action", "comment"}

// Row returns the exported fields of e in Header order.
// The action has its decorative prefix stripped.
func Row(e entry.Entry) []string {
	return []string{
		entry.FormatTimestamp(e.Start),
		entry.FormatTimestamp(e.Stop),
		strconv.Itoa(e.Minutes),
		entry.StripDecoration(e.Action),
		e.Comment,
	}
}

// FormatCSV renders entries as a CSV document: the header row followed by
// one row per entry in collection order, rows joined by "\n" with no
// trailing newline. An empty collection yields the header row only.
func FormatCSV(entries []entry.Entry) string {
	var b strings.Builder
	writeCSVRow(&b, Header)
	for _, e := range entries {
		b.WriteByte('\n')
		writeCSVRow(&b, Row(e))
	}
	return b.String()
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(QuoteField(f))
	}
}

// QuoteField wraps s in double quotes, doubling any inner quotes, if and
// only if s contains a comma, a double quote or a newline.
func QuoteField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename returns the artifact name for an export taken at t:
// <prefix>_<YYYYMMDD>_<HHMMSS>.<ext>, using t's wall clock.
func Filename(prefix, ext string, t time.Time) string {
	return prefix + "_" + t.Format("20060102_150405") + "." + ext
}
