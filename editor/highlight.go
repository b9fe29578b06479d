package editor

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/linguista/linguista/format"
	"github.com/linguista/linguista/internal/grapheme"
)

// HighlightSpan styles the clusters [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorCol is the cluster column of the cursor when HasCursor is set,
	// otherwise -1.
	CursorCol int
	HasCursor bool
}

type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) { return f(ctx) }

// MarkdownHighlighter styles the markers of every rule in reg: line markers at
// the start of a line and every occurrence of a wrap prefix or suffix.
func MarkdownHighlighter(reg *format.Registry, style lipgloss.Style) Highlighter {
	return HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
		if ctx.Text == "" || reg == nil {
			return nil, nil
		}
		cols := byteCols(ctx.Text)
		span := func(from, to int) HighlightSpan {
			return HighlightSpan{StartCol: cols[from], EndCol: cols[to], Style: style}
		}

		var spans []HighlightSpan
		for _, r := range reg.Rules() {
			switch r := r.(type) {
			case format.LineRule:
				if n := r.MarkerLen(ctx.Text); n > 0 {
					spans = append(spans, span(0, n))
				}
			case format.WrapRule:
				for _, marker := range []string{r.Prefix(), r.Suffix()} {
					for off := 0; off < len(ctx.Text); {
						i := strings.Index(ctx.Text[off:], marker)
						if i < 0 {
							break
						}
						spans = append(spans, span(off+i, off+i+len(marker)))
						off += i + len(marker)
					}
				}
			}
		}
		return spans, nil
	})
}

// byteCols maps each byte offset of s (and len(s)) to the cluster column it
// falls in, rounding up for offsets inside a cluster.
func byteCols(s string) []int {
	cols := make([]int, len(s)+1)
	off := 0
	for i, c := range grapheme.Split(s) {
		cols[off] = i
		for j := 1; j < len(c); j++ {
			cols[off+j] = i + 1
		}
		off += len(c)
	}
	cols[len(s)] = grapheme.Count(s)
	return cols
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol > out[j].EndCol
	})

	// Overlaps are dropped, keeping the earliest and longest span.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if n := len(merged); n > 0 && sp.StartCol < merged[n-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func styleAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	for _, sp := range spans {
		if col < sp.StartCol {
			break
		}
		if col < sp.EndCol {
			return sp.Style, true
		}
	}
	return lipgloss.Style{}, false
}
