// Package theme holds the palette and the pre-built lipgloss styles used by
// the quote wizard.
package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string

	// Background hierarchy (dark→light)
	BgMantle   string
	BgBase     string
	BgSurface0 string
	BgSurface2 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgDim    string
	FgBase   string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the active theme.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewCatppuccinMocha()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		HeaderTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true),

		ModalContainer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Background(c(t.BgBase)).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Bold(true).
			Align(lipgloss.Center),

		HintKey:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)).Bold(true),
		HintDesc:      lipgloss.NewStyle().Foreground(c(t.FgDim)),
		HintSeparator: lipgloss.NewStyle().Foreground(c(t.BgSurface2)),

		Section:  lipgloss.NewStyle().Foreground(c(t.Secondary)).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(c(t.FgDim)),
		Required: lipgloss.NewStyle().Foreground(c(t.Error)),
		Text:     lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted:    lipgloss.NewStyle().Foreground(c(t.FgMuted)).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(c(t.Error)),
		Success:  lipgloss.NewStyle().Foreground(c(t.Success)),
		Warning:  lipgloss.NewStyle().Foreground(c(t.Warning)),

		Cursor: lipgloss.NewStyle().
			Foreground(c(t.Primary)).
			Background(c(t.BgSurface0)).
			Bold(true),
		Chip: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 1),
		ChipSelected: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Padding(0, 1),

		ButtonNormal: lipgloss.NewStyle().
			Foreground(c(t.FgBase)).
			Background(c(t.BgSurface0)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(c(t.FgMuted)).
			Background(c(t.BgMantle)).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(c(t.BgBase)).
			Background(c(t.Secondary)).
			Bold(true).
			Padding(0, 2).
			MarginLeft(1).
			MarginRight(1),

		ProgressTodo: lipgloss.NewStyle().Foreground(c(t.BgSurface2)),
	}
}
