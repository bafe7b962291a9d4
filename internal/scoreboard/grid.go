package scoreboard

import (
	"fmt"
	"io"
	"strings"
)

// boxSeparator joins boxes printed side by side within a row.
const boxSeparator = "  "

// RenderGrid prints boxes in rows of perRow columns. Boxes within a row are
// padded to the tallest box's height with blank filler lines, then printed
// line-by-line across the row. A blank line separates rows.
func RenderGrid(w io.Writer, boxes []Box, perRow int) {
	if perRow < 1 {
		perRow = 1
	}
	for _, row := range chunkBoxes(boxes, perRow) {
		padded := padRow(row)
		if len(padded) == 0 {
			continue
		}
		height := padded[0].Height()
		for line := 0; line < height; line++ {
			cells := make([]string, len(padded))
			for i, b := range padded {
				cells[i] = b[line]
			}
			fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, boxSeparator), " "))
		}
		fmt.Fprintln(w)
	}
}

// chunkBoxes partitions boxes into consecutive groups of perRow; the last
// group may be shorter.
func chunkBoxes(boxes []Box, perRow int) [][]Box {
	rows := make([][]Box, 0, (len(boxes)+perRow-1)/perRow)
	for start := 0; start < len(boxes); start += perRow {
		end := start + perRow
		if end > len(boxes) {
			end = len(boxes)
		}
		rows = append(rows, boxes[start:end])
	}
	return rows
}

// padRow pads every box in a row to the tallest box's height with blank lines
// of box width. The input boxes are not modified.
func padRow(row []Box) []Box {
	tallest := 0
	for _, b := range row {
		if b.Height() > tallest {
			tallest = b.Height()
		}
	}
	padded := make([]Box, len(row))
	for i, b := range row {
		out := make(Box, 0, tallest)
		out = append(out, b...)
		for out.Height() < tallest {
			out = append(out, blankLine())
		}
		padded[i] = out
	}
	return padded
}
