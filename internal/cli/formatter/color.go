package formatter

import (
	"github.com/alexanderramin/chime/internal/resolver"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the style used for a resolved status headline.
func KindStyle(kind resolver.StatusKind) lipgloss.Style {
	switch kind {
	case resolver.InBlock:
		return StyleGreen
	case resolver.PassingTime:
		return StyleYellow
	case resolver.BeforeSchool:
		return StyleBlue
	default:
		return StyleDim
	}
}

// Bold renders s in the bold foreground style.
func Bold(s string) string {
	return StyleBold.Render(s)
}

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}
