package editor

import (
	"strings"

	"github.com/linguista/linguista/internal/grapheme"
)

// visualCell is one grapheme cluster of a line as drawn on screen.
type visualCell struct {
	// Text is what gets drawn. Tabs are expanded to spaces.
	Text string
	// Col is the cluster index in the buffer line.
	Col int
	// Start is the visual cell offset of the cluster.
	Start int
	Width int
	Space bool
}

type visualLine struct {
	cells []visualCell
	width int
}

func buildVisualLine(line string, tabWidth int) visualLine {
	clusters := grapheme.Split(line)
	vl := visualLine{cells: make([]visualCell, 0, len(clusters))}
	for i, c := range clusters {
		w := cellWidth(c, vl.width, tabWidth)
		text := c
		if c == "\t" {
			text = strings.Repeat(" ", w)
		}
		vl.cells = append(vl.cells, visualCell{
			Text:  text,
			Col:   i,
			Start: vl.width,
			Width: w,
			Space: grapheme.Classify(c) == grapheme.ClassSpace,
		})
		vl.width += w
	}
	return vl
}

// Len is the number of clusters in the line.
func (vl visualLine) Len() int { return len(vl.cells) }

// cellForCol maps a cluster column to its first visual cell. The column past
// the last cluster maps to the line width.
func (vl visualLine) cellForCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= len(vl.cells) {
		return vl.width
	}
	return vl.cells[col].Start
}

// colForCell maps a visual cell to the cluster drawn there. Cells inside a
// wide cluster map to that cluster; cells past the end map to Len.
func (vl visualLine) colForCell(x int) int {
	if x <= 0 {
		return 0
	}
	for _, c := range vl.cells {
		if x < c.Start+c.Width {
			return c.Col
		}
	}
	return len(vl.cells)
}
