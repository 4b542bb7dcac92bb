package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/store"
	"github.com/xolan/actionlog/internal/tui/ui"
)

// EntriesModel is the model for the entries view
type EntriesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	// UI state
	width       int
	height      int
	cursor      int
	rows        []store.DisplayRow
	total       int
	showComment bool
}

// NewEntriesModel creates a new entries view model
func NewEntriesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) EntriesModel {
	return EntriesModel{
		services: services,
		styles:   styles,
		keys:     keys,
	}
}

// entriesLoadedMsg is sent when entries are loaded
type entriesLoadedMsg struct {
	rows  []store.DisplayRow
	total int
}

// Init implements tea.Model
func (m EntriesModel) Init() tea.Cmd {
	return m.loadEntries()
}

// Update implements tea.Model
func (m EntriesModel) Update(msg tea.Msg) (EntriesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showComment {
			if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Select) {
				m.showComment = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.rows) && m.rows[m.cursor].Comment != "" {
				m.showComment = true
			}
			return m, nil
		}

	case entriesLoadedMsg:
		m.rows = msg.rows
		m.total = msg.total
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case ui.EntriesChangedMsg:
		return m, m.loadEntries()

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// View implements tea.Model
func (m EntriesModel) View() string {
	if m.showComment {
		return m.renderComment()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Entries"))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(m.styles.StatLabel.Render("No entries recorded"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.StatLabel.Render("Press '1' to log an action"))
		return b.String()
	}

	b.WriteString(RenderRows(m.rows, m.styles, RowRenderOptions{
		Width:  m.width,
		Cursor: m.cursor,
	}))

	// Total
	b.WriteString(strings.Repeat("─", min(50, m.width)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total: %s (%d %s)",
		formatDuration(m.total),
		len(m.rows),
		pluralize("entry", len(m.rows))))

	return b.String()
}

// renderComment renders the full comment of the selected entry
func (m EntriesModel) renderComment() string {
	r := m.rows[m.cursor]

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(fmt.Sprintf("[%d] %s", r.Index, r.Action)))
	b.WriteString("\n\n")
	b.WriteString(r.Comment)
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Press Esc or Enter to close"))
	return m.styles.Dialog.Render(b.String())
}

// SetSize sets the view dimensions
func (m *EntriesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Cursor returns the selected row position
func (m EntriesModel) Cursor() int {
	return m.cursor
}

// loadEntries creates a command to load entries
func (m EntriesModel) loadEntries() tea.Cmd {
	return func() tea.Msg {
		result := m.services.Entry.List()
		return entriesLoadedMsg{
			rows:  result.Rows,
			total: result.Total,
		}
	}
}

// IsInputMode returns true when the view is capturing keyboard input
func (m EntriesModel) IsInputMode() bool {
	return m.showComment
}
