package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/briefsmith/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// meterPerPoint is how much of the meter one score point fills.
const meterPerPoint = 0.06

// RenderComplexityMeter renders the score as a bar like [████░░░░] Medium (score: 7).
// Each point fills 6% of the bar; scores of 17 and above fill it.
func RenderComplexityMeter(c domain.Complexity, width int) string {
	if width < 2 {
		width = 2
	}

	pct := float64(c.Score) * meterPerPoint
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := ComplexityStyle(c)
	return fmt.Sprintf("[%s] %s", style.Render(bar), style.Render(fmt.Sprintf("%s (score: %d)", c.Level, c.Score)))
}
