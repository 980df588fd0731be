package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orbs/internal/config"
	"github.com/vovakirdan/orbs/internal/core"
)

// Theme contains the visual styles for the board and menus.
type Theme struct {
	// Board cell styles
	Orb       lipgloss.Style
	Goal      lipgloss.Style
	Block     lipgloss.Style
	Breakable lipgloss.Style
	Cursor    lipgloss.Style
	Dim       lipgloss.Style

	// HUD styles
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return ThemeFromConfig(config.DefaultOrbsConfig().Render.Colors)
}

// ThemeFromConfig builds a theme using the configured object colors.
func ThemeFromConfig(c config.ColorsConfig) Theme {
	fg := func(color string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Theme{
		Orb:       fg(c.Orb).Bold(true),
		Goal:      fg(c.Goal),
		Block:     fg(c.Block),
		Breakable: fg(c.Breakable),
		Cursor:    fg(c.Cursor).Bold(true).Underline(true),
		Dim:       fg("238"),

		Title:   fg("51").Bold(true),
		Success: fg("46").Bold(true),
		Warning: fg("208"),

		MenuTitle:       fg("229").Bold(true).MarginBottom(1),
		MenuDescription: fg("245"),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// MonochromeTheme returns a theme without colors, for terminals that
// render them poorly.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	t := DefaultTheme()
	t.Orb = plain.Bold(true)
	t.Goal = plain
	t.Block = plain
	t.Breakable = plain
	t.Cursor = plain.Reverse(true)
	t.Dim = plain.Faint(true)
	return t
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorOrb:
		return t.Orb
	case core.ColorGoal:
		return t.Goal
	case core.ColorBlock:
		return t.Block
	case core.ColorBreakable:
		return t.Breakable
	case core.ColorCursor:
		return t.Cursor
	case core.ColorDim:
		return t.Dim
	case core.ColorTitle:
		return t.Title
	case core.ColorSuccess:
		return t.Success
	case core.ColorWarning:
		return t.Warning
	default:
		return lipgloss.NewStyle()
	}
}
