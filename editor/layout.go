package editor

import "github.com/linguista/linguista/buffer"

type layoutKey struct {
	version  uint64
	width    int
	wrapMode WrapMode
	tabWidth int
}

type layoutRow struct {
	row, seg int
}

type layoutLine struct {
	text     string
	visual   visualLine
	segments []wrappedSegment
	firstRow int
}

// layout maps logical lines to visual rows.
type layout struct {
	key   layoutKey
	valid bool
	lines []layoutLine
	rows  []layoutRow
}

func (m *Model) ensureLayout() *layout {
	key := layoutKey{
		version:  m.buf.Version(),
		width:    m.wrapWidth(),
		wrapMode: m.cfg.WrapMode,
		tabWidth: m.cfg.TabWidth,
	}
	if m.layout != nil && m.layout.valid && m.layout.key == key {
		return m.layout
	}

	n := m.buf.LineCount()
	l := &layout{key: key, valid: true, lines: make([]layoutLine, 0, n), rows: make([]layoutRow, 0, n)}
	for row := 0; row < n; row++ {
		text := m.buf.Line(row)
		vl := buildVisualLine(text, m.cfg.TabWidth)
		segs := wrapSegments(vl, m.cfg.WrapMode, key.width)
		l.lines = append(l.lines, layoutLine{text: text, visual: vl, segments: segs, firstRow: len(l.rows)})
		for i := range segs {
			l.rows = append(l.rows, layoutRow{row: row, seg: i})
		}
	}
	m.layout = l
	return l
}

// visualPos locates p as a visual row and a cell within that row's segment.
func (l *layout) visualPos(p buffer.Pos) (visualRow, cell int) {
	if len(l.lines) == 0 {
		return 0, 0
	}
	row := clampInt(p.Row, 0, len(l.lines)-1)
	line := l.lines[row]
	col := clampInt(p.Col, 0, line.visual.Len())
	c := line.visual.cellForCol(col)

	idx := len(line.segments) - 1
	for i, seg := range line.segments {
		if col < seg.EndCol {
			idx = i
			break
		}
	}
	return line.firstRow + idx, c - line.segments[idx].StartCell
}

func (l *layout) clampVisualRow(r int) int {
	return clampInt(r, 0, max(len(l.rows)-1, 0))
}
