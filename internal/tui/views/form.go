package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/actionlog/internal/entry"
	"github.com/xolan/actionlog/internal/export"
	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/tui/ui"
)

// Form field positions
const (
	FieldStart = iota
	FieldStop
	FieldAction
	FieldComment
	fieldCount
)

var fieldLabels = [fieldCount]string{"Start", "Stop", "Action", "Comment"}

// formPanelRows is how many recent entries the panel below the form shows
const formPanelRows = 5

type statusKind int

const (
	statusInfo statusKind = iota
	statusWarning
	statusError
)

// exportDoneMsg is sent when an export finished
type exportDoneMsg struct {
	format   export.Format
	location string
	err      error
}

// shareDoneMsg is sent when a share finished
type shareDoneMsg struct {
	result export.ShareResult
}

// FormModel is the model for the log view: the entry form, length chips
// and the collection actions
type FormModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap
	now      func() time.Time

	// UI state
	width   int
	height  int
	inputs  [fieldCount]textinput.Model
	focus   int
	editing bool

	// Length chips
	presets []int
	chip    int

	// Clear-all confirmation
	confirming bool

	// Last reported result
	status     string
	statusKind statusKind
}

// NewFormModel creates a new log view model
func NewFormModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) FormModel {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 40
		inputs[i] = in
	}
	inputs[FieldStart].Placeholder = entry.Layout
	inputs[FieldStart].CharLimit = 25
	inputs[FieldStop].Placeholder = entry.Layout
	inputs[FieldStop].CharLimit = 25
	inputs[FieldAction].Placeholder = "What did you do?"
	inputs[FieldAction].CharLimit = 200
	inputs[FieldComment].Placeholder = "Optional note"
	inputs[FieldComment].CharLimit = 500

	m := FormModel{
		services: services,
		styles:   styles,
		keys:     keys,
		now:      time.Now,
		inputs:   inputs,
		presets:  services.Config.Get().LengthPresets,
	}
	m.fillStart()
	return m
}

// WithClock returns a copy of m that reads the current time from now
func (m FormModel) WithClock(now func() time.Time) FormModel {
	m.now = now
	m.inputs[FieldStart].SetValue("")
	m.fillStart()
	return m
}

// Init implements tea.Model
func (m FormModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case m.confirming:
			return m.handleConfirm(msg)
		case m.editing:
			return m.handleEditing(msg)
		}
		return m.handleNormal(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus(statusError, fmt.Sprintf("Export failed: %v", msg.err))
		} else {
			m.setStatus(statusInfo, fmt.Sprintf("Exported %s to %s", strings.ToUpper(string(msg.format)), msg.location))
		}
		return m, nil

	case shareDoneMsg:
		m.reportShare(msg.result)
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	return m, nil
}

// handleNormal handles keys while no field has focus
func (m FormModel) handleNormal(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit), key.Matches(msg, m.keys.Select):
		return m, m.startEditing(m.focus)

	case key.Matches(msg, m.keys.Up):
		m.focus = (m.focus - 1 + fieldCount) % fieldCount
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.focus = (m.focus + 1) % fieldCount
		return m, nil

	case key.Matches(msg, m.keys.Save):
		return m.save()

	case key.Matches(msg, m.keys.ClearForm):
		m.clearForm()
		m.setStatus(statusInfo, "Form cleared")
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.chip > 0 {
			m.chip--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.chip < len(m.presets)-1 {
			m.chip++
		}
		return m, nil

	case key.Matches(msg, m.keys.ApplyLength):
		m.applyLength()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.export(export.CSV)

	case key.Matches(msg, m.keys.ExportXLSX):
		return m.export(export.XLSX)

	case key.Matches(msg, m.keys.Share):
		return m.share()

	case key.Matches(msg, m.keys.ClearAll):
		if m.services.Entry.Count() == 0 {
			m.setStatus(statusInfo, "No entries to clear")
			return m, nil
		}
		m.confirming = true
		return m, nil

	case key.Matches(msg, m.keys.ToggleDetail):
		shown, outcome := m.services.Entry.ToggleDetails()
		if !outcome.OK() {
			m.setStatus(statusWarning, fmt.Sprintf("Preference not saved: %v", outcome.Err))
		} else if shown {
			m.setStatus(statusInfo, "Entries: shown")
		} else {
			m.setStatus(statusInfo, "Entries: hidden")
		}
		return m, entriesChanged
	}

	return m, nil
}

// handleEditing handles keys while a field has focus
func (m FormModel) handleEditing(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "ctrl+s":
		m.stopEditing()
		return m.save()
	case "esc":
		m.stopEditing()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.startEditing((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.startEditing((m.focus - 1 + fieldCount) % fieldCount)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleConfirm handles keys while the clear-all dialog is open
func (m FormModel) handleConfirm(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirming = false
		count := m.services.Entry.Count()
		cleared, outcome := m.services.Entry.ClearAll(func() bool { return true })
		if !cleared {
			return m, nil
		}
		if !outcome.OK() {
			m.setStatus(statusWarning, fmt.Sprintf("Deleted %d %s, but saving failed: %v", count, pluralize("entry", count), outcome.Err))
		} else {
			m.setStatus(statusInfo, fmt.Sprintf("Deleted %d %s", count, pluralize("entry", count)))
		}
		return m, entriesChanged

	case key.Matches(msg, m.keys.Deny):
		m.confirming = false
		m.setStatus(statusInfo, "Clear cancelled")
	}
	return m, nil
}

// save normalizes the form into a new entry. The form keeps its values
// when validation fails.
func (m FormModel) save() (FormModel, tea.Cmd) {
	in := service.AddInput{Input: entry.Input{
		Start:   m.inputs[FieldStart].Value(),
		Stop:    m.inputs[FieldStop].Value(),
		Action:  m.inputs[FieldAction].Value(),
		Comment: m.inputs[FieldComment].Value(),
	}}

	result, err := m.services.Entry.Create(in, m.now())
	switch {
	case errors.Is(err, entry.ErrMissingAction):
		m.setStatus(statusError, "Please enter an action")
		m.focus = FieldAction
		return m, nil
	case err != nil:
		m.setStatus(statusError, err.Error())
		return m, nil
	}

	m.inputs[FieldStart].SetValue(entry.FormatTimestamp(result.Entry.Start))
	m.clearForm()

	e := result.Entry
	if !result.Outcome.OK() {
		m.setStatus(statusWarning, fmt.Sprintf("Logged %s in memory only: %v", e.DisplayAction(), result.Outcome.Err))
	} else {
		m.setStatus(statusInfo, fmt.Sprintf("Logged: %s (%s)", e.DisplayAction(), formatDuration(e.Minutes)))
	}
	return m, entriesChanged
}

// applyLength sets the stop field from the start field and the selected chip
func (m *FormModel) applyLength() {
	if len(m.presets) == 0 {
		return
	}
	delta := m.presets[m.chip]
	start, stop, err := entry.AdjustLength(m.inputs[FieldStart].Value(), delta, m.localNow())
	if err != nil {
		m.setStatus(statusError, err.Error())
		return
	}
	m.inputs[FieldStart].SetValue(start)
	m.inputs[FieldStop].SetValue(stop)
	m.setStatus(statusInfo, fmt.Sprintf("Length %s applied", formatDelta(delta)))
}

// export renders the collection and hands the write off to a command
func (m FormModel) export(f export.Format) (FormModel, tea.Cmd) {
	doc, err := m.services.Export.Document(f, m.now())
	if errors.Is(err, export.ErrNothingToExport) {
		m.setStatus(statusInfo, "No entries to export.")
		return m, nil
	}
	if err != nil {
		m.setStatus(statusError, fmt.Sprintf("Export failed: %v", err))
		return m, nil
	}

	m.setStatus(statusInfo, "Exporting "+doc.Name+"...")
	exporter := m.services.Export
	return m, func() tea.Msg {
		location, err := exporter.Deliver(context.Background(), doc, "")
		return exportDoneMsg{format: f, location: location, err: err}
	}
}

// share renders the collection as CSV and hands the upload off to a command
func (m FormModel) share() (FormModel, tea.Cmd) {
	doc, err := m.services.Export.Document(export.CSV, m.now())
	if errors.Is(err, export.ErrNothingToExport) {
		m.setStatus(statusInfo, "No entries to share.")
		return m, nil
	}
	if err != nil {
		m.setStatus(statusError, fmt.Sprintf("Share failed: %v", err))
		return m, nil
	}

	m.setStatus(statusInfo, "Sharing "+doc.Name+"...")
	exporter := m.services.Export
	return m, func() tea.Msg {
		return shareDoneMsg{result: exporter.ShareDocument(context.Background(), doc, "")}
	}
}

func (m *FormModel) reportShare(res export.ShareResult) {
	switch {
	case res.Shared:
		m.setStatus(statusInfo, "Shared to "+res.URL)
	case res.Err != nil:
		m.setStatus(statusError, fmt.Sprintf("Share failed: %v", res.Err))
	default:
		m.setStatus(statusWarning, fmt.Sprintf("Sharing unavailable (%s), exported to %s", res.Reason, res.URL))
	}
}

// clearForm empties stop, action and comment. The start is kept, or set
// to now when empty.
func (m *FormModel) clearForm() {
	m.inputs[FieldStop].SetValue("")
	m.inputs[FieldAction].SetValue("")
	m.inputs[FieldComment].SetValue("")
	m.fillStart()
	m.focus = FieldStart
}

func (m *FormModel) fillStart() {
	if strings.TrimSpace(m.inputs[FieldStart].Value()) == "" {
		m.inputs[FieldStart].SetValue(entry.FormatTimestamp(m.localNow()))
	}
}

func (m FormModel) localNow() time.Time {
	return m.now().In(m.services.Config.Get().Location())
}

func (m *FormModel) startEditing(field int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = field
	m.editing = true
	m.inputs[m.focus].Focus()
	return textinput.Blink
}

func (m *FormModel) stopEditing() {
	m.inputs[m.focus].Blur()
	m.editing = false
}

func (m *FormModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func entriesChanged() tea.Msg {
	return ui.EntriesChangedMsg{}
}

// View implements tea.Model
func (m FormModel) View() string {
	if m.confirming {
		return m.renderConfirm()
	}

	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Log an Action"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		label := fmt.Sprintf("%-8s", fieldLabels[i]+":")
		if i == m.focus {
			b.WriteString(m.styles.FieldLabelFocused.Render("▸ " + label))
		} else {
			b.WriteString(m.styles.FieldLabel.Render("  " + label))
		}
		b.WriteString(" ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderChips())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.renderStatus())
		b.WriteString("\n")
	}

	count := m.services.Entry.Count()
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render(fmt.Sprintf("%d %s recorded", count, pluralize("entry", count))))
	b.WriteString("\n")

	if m.services.Entry.ShowDetails() && count > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderPanel())
	}

	return b.String()
}

func (m FormModel) renderChips() string {
	if len(m.presets) == 0 {
		return ""
	}
	chips := make([]string, 0, len(m.presets))
	for i, p := range m.presets {
		if i == m.chip {
			chips = append(chips, m.styles.ChipActive.Render(formatDelta(p)))
		} else {
			chips = append(chips, m.styles.Chip.Render(formatDelta(p)))
		}
	}
	return m.styles.FieldLabel.Render("  Length:  ") + strings.Join(chips, " ")
}

func (m FormModel) renderStatus() string {
	switch m.statusKind {
	case statusError:
		return m.styles.Error.Render(m.status)
	case statusWarning:
		return m.styles.Warning.Render(m.status)
	}
	return m.styles.Success.Render(m.status)
}

func (m FormModel) renderPanel() string {
	list := m.services.Entry.List()
	return RenderRows(list.Rows, m.styles, RowRenderOptions{
		Width:  m.width,
		Cursor: -1,
		Limit:  formPanelRows,
	})
}

func (m FormModel) renderConfirm() string {
	var b strings.Builder
	count := m.services.Entry.Count()
	b.WriteString(m.styles.DialogTitle.Render("Delete ALL entries?"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Warning.Render(fmt.Sprintf("%d %s will be removed. A backup is kept.", count, pluralize("entry", count))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.StatLabel.Render("Press Y to confirm, N or Esc to cancel"))
	return m.styles.Dialog.Render(b.String())
}

// SetSize sets the view dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true when the view is capturing keyboard input
func (m FormModel) IsInputMode() bool {
	return m.editing || m.confirming
}

// Value returns the current text of a form field
func (m FormModel) Value(field int) string {
	return m.inputs[field].Value()
}

// Status returns the last reported status line
func (m FormModel) Status() string {
	return m.status
}
