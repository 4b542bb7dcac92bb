// Package tui provides the full-screen terminal interface for actionlog.
// It hosts the log form, the entry list and the settings view as tabs.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/actionlog/internal/logging"
	"github.com/xolan/actionlog/internal/service"
	"github.com/xolan/actionlog/internal/tui/ui"
	"github.com/xolan/actionlog/internal/tui/views"
)

// Tab identifies one of the top-level views
type Tab int

const (
	TabLog Tab = iota
	TabEntries
	TabConfig
)

var tabNames = []string{"Log", "Entries", "Config"}

// chromeRows is the height taken by the tab bar and the status bar
const chromeRows = 4

type keyHint struct{ key, desc string }

// Status bar hints per tab, in browse mode and while a view captures input
var (
	browseHints = map[Tab][]keyHint{
		TabLog: {
			{"e", "edit"}, {"s", "save"}, {"←/→ space", "length"},
			{"x", "export"}, {"p", "share"}, {"v", "entries"},
		},
		TabEntries: {{"j/k", "navigate"}, {"Enter", "comment"}},
		TabConfig:  {{"t", "themes"}},
	}
	inputHints = map[Tab][]keyHint{
		TabLog:     {{"Tab", "switch field"}, {"Enter", "save"}, {"Esc", "cancel"}},
		TabEntries: {{"Esc", "close"}},
		TabConfig:  {{"j/k", "navigate"}, {"Enter", "select"}, {"Esc", "cancel"}},
	}
	globalHints = []keyHint{{"1-3", "views"}, {"?", "help"}, {"q", "quit"}}
)

// Help overlay sections per tab
var helpSections = map[Tab][]keyHint{
	TabLog: {
		{"j/k", "Move between fields"},
		{"e/Enter", "Edit field (Tab next, Esc done)"},
		{"s/Ctrl+S", "Save entry"},
		{"c", "Clear form"},
		{"h/l", "Pick length"},
		{"Space/+", "Apply length from start"},
		{"x/X", "Export CSV/XLSX"},
		{"p", "Share CSV"},
		{"v", "Show/hide entries"},
		{"D", "Delete all entries"},
	},
	TabEntries: {
		{"j/k", "Navigate up/down"},
		{"Enter", "View comment"},
	},
	TabConfig: {
		{"t/Enter", "Open theme selector"},
		{"j/k", "Navigate themes"},
		{"Enter", "Select theme"},
		{"Esc", "Cancel"},
	},
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	width     int
	height    int
	showHelp  bool

	formView    views.FormModel
	entriesView views.EntriesModel
	configView  views.ConfigModel

	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates the root model with the theme from config
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		activeTab:     TabLog,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		formView:      views.NewFormModel(services, styles, keys),
		entriesView:   views.NewEntriesModel(services, styles, keys),
		configView:    views.NewConfigModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.formView.Init(), m.entriesView.Init())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleGlobalKey(msg); handled {
			return next, cmd
		}

	case ui.EntriesChangedMsg:
		return m, m.broadcast(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		contentHeight := m.height - chromeRows
		m.formView.SetSize(m.width, contentHeight)
		m.entriesView.SetSize(m.width, contentHeight)
		m.configView.SetSize(m.width, contentHeight)
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		m.styles = m.themeProvider.Styles()
		name := m.themeProvider.CurrentName()
		m.broadcast(ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles})
		return m, m.saveThemeConfig(name)
	}

	cmds := []tea.Cmd{m.updateActive(msg)}

	// Export and share results reach the log view after a tab switch
	if _, isKey := msg.(tea.KeyMsg); !isKey && m.activeTab != TabLog {
		var cmd tea.Cmd
		m.formView, cmd = m.formView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKey processes keys that work in every view. A view that
// captures input (form editing, dialogs, the theme picker) gets every key.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if m.isModalInputMode() {
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil, true
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(Tab((int(m.activeTab) + 1) % len(tabNames)))
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames)))
	case key.Matches(msg, m.keys.Tab1):
		return m.switchTab(TabLog)
	case key.Matches(msg, m.keys.Tab2):
		return m.switchTab(TabEntries)
	case key.Matches(msg, m.keys.Tab3):
		return m.switchTab(TabConfig)
	}
	return m, nil, false
}

func (m Model) switchTab(tab Tab) (Model, tea.Cmd, bool) {
	m.activeTab = tab
	return m, m.initCurrentView(), true
}

// updateActive routes msg to the view on screen
func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.activeTab {
	case TabLog:
		m.formView, cmd = m.formView.Update(msg)
	case TabEntries:
		m.entriesView, cmd = m.entriesView.Update(msg)
	case TabConfig:
		m.configView, cmd = m.configView.Update(msg)
	}
	return cmd
}

// broadcast sends msg to every view, visible or not
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var formCmd, entriesCmd, configCmd tea.Cmd
	m.formView, formCmd = m.formView.Update(msg)
	m.entriesView, entriesCmd = m.entriesView.Update(msg)
	m.configView, configCmd = m.configView.Update(msg)
	return tea.Batch(formCmd, entriesCmd, configCmd)
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.activeTab {
	case TabLog:
		body = m.formView.View()
	case TabEntries:
		body = m.entriesView.View()
	case TabConfig:
		body = m.configView.View()
	}

	if m.showHelp {
		return m.styles.App.Render(m.renderHelpOverlay())
	}
	return m.styles.App.Render(m.renderTabs() + "\n" + body + "\n" + m.renderStatusBar())
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		style := m.styles.TabInactive
		if Tab(i) == m.activeTab {
			style = m.styles.TabActive
		}
		tabs[i] = style.Render(name)
	}
	return m.styles.TabBar.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderStatusBar() string {
	hints := browseHints[m.activeTab]
	if m.isModalInputMode() {
		hints = inputHints[m.activeTab]
	} else {
		hints = append(hints[:len(hints):len(hints)], globalHints...)
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = m.renderKeyHelp(h.key, h.desc)
	}
	content := strings.Join(parts, "  ")
	if pad := m.width - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}
	return m.styles.StatusBar.Render(content)
}

func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s", m.styles.StatusKey.Render(key), m.styles.StatusHelp.Render(desc))
}

func (m Model) renderHelpOverlay() string {
	var b strings.Builder

	b.WriteString(m.styles.ViewTitle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	writeHelpSection(&b, m.styles, "Global", []keyHint{
		{"Tab/1-3", "Switch views"}, {"?", "Toggle help"}, {"q", "Quit"},
	})
	b.WriteString("\n")
	writeHelpSection(&b, m.styles, tabNames[m.activeTab], helpSections[m.activeTab])
	b.WriteString("\n")
	b.WriteString(m.styles.StatLabel.Render("Press ? to close"))

	return m.styles.Dialog.Render(b.String())
}

func writeHelpSection(b *strings.Builder, styles ui.Styles, title string, hints []keyHint) {
	b.WriteString(styles.StatLabel.Render(title + ":"))
	b.WriteString("\n")
	for _, h := range hints {
		fmt.Fprintf(b, "  %-10s %s\n", h.key, h.desc)
	}
}

// isModalInputMode reports whether the active view is capturing keys
func (m Model) isModalInputMode() bool {
	switch m.activeTab {
	case TabLog:
		return m.formView.IsInputMode()
	case TabEntries:
		return m.entriesView.IsInputMode()
	case TabConfig:
		return m.configView.IsInputMode()
	}
	return false
}

// initCurrentView reloads the active view after a tab switch
func (m Model) initCurrentView() tea.Cmd {
	switch m.activeTab {
	case TabLog:
		return m.formView.Init()
	case TabEntries:
		return m.entriesView.Init()
	case TabConfig:
		return m.configView.Init()
	}
	return nil
}

func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		cfg.Theme = themeName
		if err := m.services.Config.Update(cfg); err != nil {
			logging.Debugf("tui: save theme %q: %v", themeName, err)
		}
		return nil
	}
}

// GetThemeProvider returns the theme provider shared with the views
func (m Model) GetThemeProvider() *ui.ThemeProvider {
	return m.themeProvider
}

// Run starts the TUI and blocks until the user quits
func Run(services *service.Services) error {
	_, err := tea.NewProgram(New(services), tea.WithAltScreen()).Run()
	return err
}
