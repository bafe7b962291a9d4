package scoreboard

import (
	"bytes"
	"strings"
	"testing"
)

// boxOfHeight builds a fake box of n identical lines for layout tests.
func boxOfHeight(n int, fill string) Box {
	b := make(Box, n)
	for i := range b {
		b[i] = fill
	}
	return b
}

func TestChunkBoxes(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		perRow      int
		wantRows    int
		wantLastLen int
	}{
		{"even split", 6, 3, 2, 3},
		{"ragged last row", 7, 3, 3, 1},
		{"fewer than one row", 2, 4, 1, 2},
		{"single column", 3, 1, 3, 1},
		{"exactly one row", 3, 3, 1, 3},
		{"empty", 0, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			boxes := make([]Box, tt.total)
			for i := range boxes {
				boxes[i] = boxOfHeight(2, "x")
			}

			rows := chunkBoxes(boxes, tt.perRow)
			if len(rows) != tt.wantRows {
				t.Fatalf("chunkBoxes(%d, %d) produced %d rows, want %d", tt.total, tt.perRow, len(rows), tt.wantRows)
			}
			if tt.wantRows == 0 {
				return
			}
			for i, row := range rows[:len(rows)-1] {
				if len(row) != tt.perRow {
					t.Errorf("row %d has %d boxes, want %d", i, len(row), tt.perRow)
				}
			}
			if got := len(rows[len(rows)-1]); got != tt.wantLastLen {
				t.Errorf("last row has %d boxes, want %d", got, tt.wantLastLen)
			}
		})
	}
}

func TestPadRow(t *testing.T) {
	short := boxOfHeight(3, "short")
	tall := boxOfHeight(5, "tall")

	padded := padRow([]Box{short, tall})

	for i, b := range padded {
		if b.Height() != 5 {
			t.Errorf("padded box %d height = %d, want 5", i, b.Height())
		}
	}

	// Filler lines are blank and box-wide.
	if got := padded[0][4]; got != blankLine() {
		t.Errorf("filler line = %q, want %q", got, blankLine())
	}

	// Originals are untouched.
	if short.Height() != 3 {
		t.Errorf("input box was modified, height = %d, want 3", short.Height())
	}
}

func TestRenderGrid(t *testing.T) {
	a := Box{"AAAA", "AAAA"}
	b := Box{"BBBB", "BBBB", "BBBB"}
	c := Box{"CCCC"}

	var out bytes.Buffer
	RenderGrid(&out, []Box{a, b, c}, 2)

	lines := strings.Split(out.String(), "\n")
	want := []string{
		"AAAA  BBBB",
		"AAAA  BBBB",
		blankLine() + "  BBBB",
		"",
		"CCCC",
		"",
		"", // trailing newline
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d output lines, want %d:\n%s", len(lines), len(want), out.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderGridClampsPerRow(t *testing.T) {
	var out bytes.Buffer
	RenderGrid(&out, []Box{{"XX"}, {"YY"}}, 0)

	// perRow below 1 falls back to a single column.
	want := "XX\n\nYY\n\n"
	if out.String() != want {
		t.Errorf("RenderGrid with perRow=0 = %q, want %q", out.String(), want)
	}
}

func TestRenderGridEmpty(t *testing.T) {
	var out bytes.Buffer
	RenderGrid(&out, nil, 3)
	if out.Len() != 0 {
		t.Errorf("RenderGrid with no boxes wrote %q, want nothing", out.String())
	}
}
