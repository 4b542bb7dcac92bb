package views

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/xolan/actionlog/internal/store"
	"github.com/xolan/actionlog/internal/tui/ui"
)

// RowRenderOptions configures how entry rows are rendered
type RowRenderOptions struct {
	Width  int // Available width for rendering
	Cursor int // Currently selected row (-1 for none)
	Limit  int // Render at most the last Limit rows (0 for all)
}

// RenderRows renders display rows with aligned columns
func RenderRows(rows []store.DisplayRow, styles ui.Styles, opts RowRenderOptions) string {
	if len(rows) == 0 {
		return ""
	}

	first := 0
	if opts.Limit > 0 && len(rows) > opts.Limit {
		first = len(rows) - opts.Limit
	}

	// Calculate column widths for alignment
	maxIndexWidth := 0
	maxTimeWidth := 0
	for _, r := range rows[first:] {
		maxIndexWidth = max(maxIndexWidth, len(fmt.Sprintf("[%d]", r.Index)))
		maxTimeWidth = max(maxTimeWidth, uniseg.StringWidth(timeRange(r)))
	}

	// Leave room for index, times and the length column
	textWidth := opts.Width - maxIndexWidth - maxTimeWidth - 12
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder
	if first > 0 {
		b.WriteString(styles.StatLabel.Render(fmt.Sprintf("  … %d earlier %s", first, pluralize("entry", first))))
		b.WriteString("\n")
	}
	for i := first; i < len(rows); i++ {
		r := rows[i]
		style := styles.EntryNormal
		if i == opts.Cursor {
			style = styles.EntrySelected
		}

		text := styles.EntryAction.Render(r.Action)
		plain := r.Action
		if r.Comment != "" {
			plain += " - " + r.Comment
		}
		if uniseg.StringWidth(plain) > textWidth {
			text = styles.EntryAction.Render(truncate(plain, textWidth))
		} else if r.Comment != "" {
			text += styles.EntryComment.Render(" - " + r.Comment)
		}
		text += strings.Repeat(" ", max(0, textWidth-uniseg.StringWidth(plain)))

		index := styles.EntryIndex.Render(padRight(fmt.Sprintf("[%d]", r.Index), maxIndexWidth))
		times := styles.EntryTime.Render(padRight(timeRange(r), maxTimeWidth))
		length := styles.EntryDuration.Render(formatDuration(r.Minutes))

		line := fmt.Sprintf("%s %s %s %s", index, times, text, length)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func timeRange(r store.DisplayRow) string {
	return r.ShortStart + " - " + r.ShortStop
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-uniseg.StringWidth(s)))
}

// truncate shortens s to at most width cells, ending with an ellipsis.
// Grapheme clusters are never split.
func truncate(s string, width int) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width-1 {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	b.WriteString("…")
	return b.String()
}

// formatDuration formats minutes as human-readable duration
func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// formatDelta formats a signed length change for a chip
func formatDelta(minutes int) string {
	if minutes < 0 {
		return "-" + formatDuration(-minutes)
	}
	return "+" + formatDuration(minutes)
}

func pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	if strings.HasSuffix(word, "y") {
		return strings.TrimSuffix(word, "y") + "ies"
	}
	return word + "s"
}
