package scoreboard

import "github.com/charmbracelet/lipgloss"

// Status colors follow the broadcast convention: green while play is live,
// red once final, yellow before first pitch.
var (
	liveStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	finalStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	scheduledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	otherStyle     = lipgloss.NewStyle()
)

// statusStyle returns the style used to color a status line.
func statusStyle(s Status) lipgloss.Style {
	switch s {
	case StatusLive:
		return liveStyle
	case StatusFinal:
		return finalStyle
	case StatusScheduled:
		return scheduledStyle
	default:
		return otherStyle
	}
}
