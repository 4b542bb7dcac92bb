package ui

// ThemeChangeRequestMsg is sent when a theme change is requested.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to all views when the theme changes.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// EntriesChangedMsg is broadcast after the entry collection or the details
// preference changed, so views showing entries re-render them.
type EntriesChangedMsg struct{}
