package scoreboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// padRight pads s with spaces until its visible width reaches w. Width is
// measured with lipgloss.Width, so ANSI color sequences do not count toward it.
// Strings already at or beyond w are returned unchanged; nothing is truncated.
func padRight(s string, w int) string {
	visible := lipgloss.Width(s)
	if visible >= w {
		return s
	}
	return s + strings.Repeat(" ", w-visible)
}
