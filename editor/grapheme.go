package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellWidth is the number of terminal cells cluster occupies when it starts at
// visual column col. Tabs advance to the next tab stop.
func cellWidth(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return tabAdvance(col, tabWidth)
	}
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 1 {
		w = 1
	}
	return w
}

func tabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
