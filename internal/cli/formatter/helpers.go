package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// Bullets renders one "  <marker> item" line per item.
func Bullets(marker string, items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "  %s %s\n", marker, item)
	}
	return b.String()
}

// Numbered renders items as a 1-based numbered list.
func Numbered(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), item)
	}
	return b.String()
}

// LabelValues renders "label: value" pairs with the labels bolded.
func LabelValues(entries []domain.LabelValue) string {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s %s\n", Bold(e.Label+":"), e.Value)
	}
	return b.String()
}

// Plural returns "1 deliverable" or "N deliverables".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Truncate shortens s to max visible runes, adding an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
