package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ComplexityStyle returns the style for a complexity band. The band's own
// color token wins when it parses; the palette is the fallback.
func ComplexityStyle(c domain.Complexity) lipgloss.Style {
	if c.Color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Bold(true)
	}
	switch c.Level {
	case domain.ComplexityHigh:
		return StyleRed.Bold(true)
	case domain.ComplexityMedium:
		return StyleYellow.Bold(true)
	case domain.ComplexityLow:
		return StyleGreen.Bold(true)
	default:
		return StyleDim
	}
}

// ComplexityBadge returns a colored indicator such as "● MEDIUM (score: 7)".
func ComplexityBadge(c domain.Complexity) string {
	label := fmt.Sprintf("● %s (score: %d)", strings.ToUpper(string(c.Level)), c.Score)
	return ComplexityStyle(c).Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
