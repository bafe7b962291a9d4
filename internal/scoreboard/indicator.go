package scoreboard

import "strings"

// Indicator glyphs shared by the count rows and the base-occupancy row.
const (
	glyphFilled = "●"
	glyphEmpty  = "○"
)

// indicators renders a row of total glyphs with the first count filled, e.g.
// 2 of 4 balls as "●●○○". Out-of-range counts are clamped: negative renders
// all empty, above total renders all filled.
func indicators(count, total int) string {
	if count < 0 {
		count = 0
	}
	if count > total {
		count = total
	}
	return strings.Repeat(glyphFilled, count) + strings.Repeat(glyphEmpty, total-count)
}

// baseGlyph renders a single occupancy marker.
func baseGlyph(occupied bool) string {
	if occupied {
		return glyphFilled
	}
	return glyphEmpty
}
