package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is the theme used when none is configured or the configured
// one is unknown
const DefaultTheme = "dracula"

// ThemeProvider owns the bubbletint registry behind the TUI styles
type ThemeProvider struct {
	registry *tint.Registry
	ids      []string // sorted tint IDs
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme.
// An empty or unknown initialTheme selects DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	for _, t := range all {
		if t.ID() == DefaultTheme {
			fallback = t
			break
		}
	}
	if fallback == nil && len(all) > 0 {
		fallback = all[0]
	}

	tp := &ThemeProvider{registry: tint.NewRegistry(fallback, all...)}
	tp.ids = tp.registry.TintIDs()
	slices.Sort(tp.ids)

	if initialTheme != "" {
		tp.registry.SetTintID(initialTheme)
	}
	return tp
}

// HasTheme reports whether name is a known theme ID
func (tp *ThemeProvider) HasTheme(name string) bool {
	_, found := slices.BinarySearch(tp.ids, name)
	return found
}

// SetTheme switches to the named theme.
// Returns false, leaving the current theme in place, if name is unknown.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme cycles forward and returns the new theme ID
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme cycles backward and returns the new theme ID
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentName returns the ID of the current theme
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the human readable name of the current theme
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns all theme IDs, sorted
func (tp *ThemeProvider) AvailableThemes() []string {
	return slices.Clone(tp.ids)
}

// Registry returns the underlying bubbletint registry
func (tp *ThemeProvider) Registry() *tint.Registry {
	return tp.registry
}

// Styles returns the TUI styles for the current theme
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
