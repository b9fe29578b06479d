package format

import (
	"sort"

	"github.com/linguista/linguista/internal/grapheme"
)

// document indexes a text by grapheme cluster so that unit offsets can be
// mapped to byte offsets without splitting a cluster.
type document struct {
	text     string
	clusters []string
	// units[i] and bytes[i] are the offsets of cluster i; the final entry is
	// the text length.
	units []int
	bytes []int
}

func newDocument(text string, u Unit) *document {
	clusters := grapheme.Split(text)
	d := &document{
		text:     text,
		clusters: clusters,
		units:    make([]int, len(clusters)+1),
		bytes:    make([]int, len(clusters)+1),
	}
	for i, c := range clusters {
		w := 1
		if u != UnitGrapheme {
			w = u.Len(c)
		}
		d.units[i+1] = d.units[i] + w
		d.bytes[i+1] = d.bytes[i] + len(c)
	}
	return d
}

func (d *document) unitLen() int { return d.units[len(d.units)-1] }

// clusterAt returns the cluster index whose start is exactly off.
// off == unitLen() maps to len(clusters).
func (d *document) clusterAt(off int) (int, bool) {
	i := sort.SearchInts(d.units, off)
	if i >= len(d.units) || d.units[i] != off {
		return 0, false
	}
	return i, true
}

// boundary reports whether byte offset off starts a cluster or ends the text.
func (d *document) boundary(off int) bool {
	i := sort.SearchInts(d.bytes, off)
	return i < len(d.bytes) && d.bytes[i] == off
}

func isLineBreak(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// lineStart returns the index of the first cluster on the line holding
// cluster i.
func (d *document) lineStart(i int) int {
	for i > 0 && !isLineBreak(d.clusters[i-1]) {
		i--
	}
	return i
}

// lineEnd returns the index of the line break ending the line that starts at
// cluster i, or len(clusters) for the last line.
func (d *document) lineEnd(i int) int {
	for i < len(d.clusters) && !isLineBreak(d.clusters[i]) {
		i++
	}
	return i
}

// lines returns the start clusters of every line intersected by [si, ei).
// A caret intersects its own line only; a selection ending at the start of a
// line does not reach into it.
func (d *document) lines(si, ei int) []int {
	last := si
	if ei > si {
		last = ei - 1
	}
	first := d.lineStart(si)
	starts := []int{first}
	for i := first; i < last && i < len(d.clusters); i++ {
		if isLineBreak(d.clusters[i]) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
