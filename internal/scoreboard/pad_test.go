package scoreboard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPadRight(t *testing.T) {
	colored := "\x1b[32mLIVE\x1b[0m" // visible width 4

	tests := []struct {
		name  string
		in    string
		width int
	}{
		{"empty to ten", "", 10},
		{"short plain", "NYY", 8},
		{"exact width", "NYY @ BOS", 9},
		{"colored string", colored, 10},
		{"unicode glyphs", "●●○○", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := padRight(tt.in, tt.width)
			if got := lipgloss.Width(out); got < tt.width {
				t.Errorf("padRight(%q, %d) visible width = %d, want >= %d", tt.in, tt.width, got, tt.width)
			}
			if !strings.HasPrefix(out, tt.in) {
				t.Errorf("padRight(%q, %d) = %q, input was altered", tt.in, tt.width, out)
			}
		})
	}
}

func TestPadRightNeverTruncates(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
	}{
		{"already wider", "a long string here", 5},
		{"exactly at width", "12345", 5},
		{"colored wider than target", "\x1b[31msome final score\x1b[0m", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := padRight(tt.in, tt.width); out != tt.in {
				t.Errorf("padRight(%q, %d) = %q, want input unchanged", tt.in, tt.width, out)
			}
		})
	}
}
