package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a proportional bar of the given width, colored green.
// value is scaled against max; a non-positive max renders an empty bar.
func RenderBar(value, max float64, width int) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if max > 0 {
		filled = int(value / max * float64(width))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return StyleGreen.Render(bar)
}
