package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/actionlog/internal/config"
	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/tui/ui"
)

// pickerRows is how many themes the picker shows at once
const pickerRows = 10

// themePicker is a scrolling list of theme IDs
type themePicker struct {
	names  []string
	cursor int
	offset int
	open   bool
}

func (p *themePicker) focus(name string) {
	for i, n := range p.names {
		if n == name {
			p.cursor = i
			break
		}
	}
	p.scroll()
}

func (p *themePicker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.names) {
		return
	}
	p.cursor = next
	p.scroll()
}

func (p *themePicker) scroll() {
	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case p.cursor >= p.offset+pickerRows:
		p.offset = p.cursor - pickerRows + 1
	}
}

func (p themePicker) selected() string {
	if len(p.names) == 0 {
		return ""
	}
	return p.names[p.cursor]
}

// window returns the visible slice bounds
func (p themePicker) window() (from, to int) {
	return p.offset, min(p.offset+pickerRows, len(p.names))
}

// configSnapshot is what the settings view renders
type configSnapshot struct {
	config  config.Config
	path    string
	exists  bool
	entries int
	backups int
}

// configLoadedMsg carries a fresh snapshot
type configLoadedMsg struct {
	configSnapshot
}

// ConfigModel shows the effective settings and lets the user pick a theme
type ConfigModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int

	snapshot  configSnapshot
	themeName string
	picker    themePicker
}

// NewConfigModel creates a new config view model
func NewConfigModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) ConfigModel {
	m := ConfigModel{
		services:  services,
		styles:    styles,
		keys:      keys,
		themeName: themeProvider.CurrentName(),
		picker:    themePicker{names: themeProvider.AvailableThemes()},
	}
	m.picker.focus(m.themeName)
	return m
}

// Init implements tea.Model
func (m ConfigModel) Init() tea.Cmd {
	return m.loadSnapshot
}

func (m ConfigModel) loadSnapshot() tea.Msg {
	snap := configSnapshot{
		config:  m.services.Config.Get(),
		path:    m.services.Config.GetPath(),
		exists:  m.services.Config.Exists(),
		entries: m.services.Entry.Count(),
	}
	if backups, err := m.services.Entry.ListBackups(); err == nil {
		snap.backups = len(backups)
	}
	return configLoadedMsg{snap}
}

// Update implements tea.Model
func (m ConfigModel) Update(msg tea.Msg) (ConfigModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picker.open {
			return m.updatePicker(msg)
		}
		if key.Matches(msg, m.keys.Select) || msg.String() == "t" {
			m.picker.open = true
			m.picker.scroll()
		}
		return m, nil

	case configLoadedMsg:
		m.snapshot = msg.configSnapshot
		m.themeName = msg.config.Theme
		if m.themeName == "" {
			m.themeName = ui.DefaultTheme
		}
		m.picker.focus(m.themeName)

	case ui.EntriesChangedMsg:
		return m, m.loadSnapshot

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
	}

	return m, nil
}

func (m ConfigModel) updatePicker(msg tea.KeyMsg) (ConfigModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.picker.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.picker.move(1)
	case key.Matches(msg, m.keys.Select):
		m.picker.open = false
		name := m.picker.selected()
		return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: name} }
	case key.Matches(msg, m.keys.Back):
		m.picker.open = false
		m.picker.focus(m.themeName)
	}
	return m, nil
}

// View implements tea.Model
func (m ConfigModel) View() string {
	var b strings.Builder
	cfg := m.snapshot.config

	b.WriteString(m.styles.ViewTitle.Render("Configuration"))
	b.WriteString("\n\n")
	b.WriteString(m.setting("Config file", m.snapshot.path))
	b.WriteString(m.styles.StatLabel.Render("Status:") + " ")
	if m.snapshot.exists {
		b.WriteString(m.styles.Success.Render("File exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("Using defaults (no config file)"))
	}
	b.WriteString("\n")

	m.section(&b, "Storage")
	b.WriteString(m.setting("storage_backend", cfg.StorageBackend))
	b.WriteString(m.setting("data_dir", orDefault(cfg.DataDir, "(app config directory)")))
	b.WriteString(m.setting("entries", fmt.Sprintf("%d stored, %d %s", m.snapshot.entries, m.snapshot.backups, pluralize("backup", m.snapshot.backups))))

	m.section(&b, "Time")
	b.WriteString(m.setting("timezone", cfg.Timezone))
	b.WriteString(m.setting("display_layout", cfg.DisplayLayout))
	b.WriteString(m.setting("length_presets", formatPresets(cfg.LengthPresets)))

	m.section(&b, "Export")
	b.WriteString(m.setting("export_dir", orDefault(cfg.ExportDir, "(current directory)")))
	b.WriteString(m.setting("export_prefix", cfg.ExportPrefix))
	b.WriteString(m.setting("share_url", orDefault(cfg.ShareURL, "(sharing disabled)")))

	m.section(&b, "Appearance")
	if m.picker.open {
		b.WriteString(m.viewPicker())
	} else {
		b.WriteString(m.setting("theme", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.StatLabel.Render("Press Enter or 't' to change theme"))
	}

	return b.String()
}

func (m ConfigModel) section(b *strings.Builder, title string) {
	b.WriteString("\n")
	b.WriteString(m.styles.FieldLabelFocused.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", min(40, max(m.width, len(title)))))
	b.WriteString("\n")
}

func (m ConfigModel) setting(name, value string) string {
	return m.styles.StatLabel.Render(name+":") + " " + m.styles.StatValue.Render(value) + "\n"
}

func (m ConfigModel) viewPicker() string {
	var b strings.Builder
	from, to := m.picker.window()

	b.WriteString(m.styles.StatValue.Render("Select a theme"))
	b.WriteString("\n")
	if from > 0 {
		b.WriteString(m.styles.StatLabel.Render("  ↑ more themes above") + "\n")
	}
	for i := from; i < to; i++ {
		name := m.picker.names[i]
		label := name
		if name == m.themeName {
			label += " (current)"
		}
		if i == m.picker.cursor {
			b.WriteString(m.styles.EntrySelected.Render("▸ " + label))
		} else {
			b.WriteString("  " + m.styles.StatValue.Render(label))
		}
		b.WriteString("\n")
	}
	if to < len(m.picker.names) {
		b.WriteString(m.styles.StatLabel.Render("  ↓ more themes below") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *ConfigModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsInputMode returns true while the theme picker is open
func (m ConfigModel) IsInputMode() bool {
	return m.picker.open
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func formatPresets(presets []int) string {
	parts := make([]string, len(presets))
	for i, p := range presets {
		parts[i] = formatDelta(p)
	}
	return strings.Join(parts, " ")
}
