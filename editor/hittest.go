package editor

import "github.com/linguista/linguista/buffer"

// screenToDocPos maps viewport-local mouse coordinates to a document position.
//
// Coordinates are in terminal cells relative to the editor's viewport: (0,0)
// is the top-left of the visible content region. Gutter clicks map to column
// 0 and x/y are clamped into document bounds.
func (m *Model) screenToDocPos(x, y int) buffer.Pos {
	l := m.ensureLayout()
	if len(l.rows) == 0 {
		return buffer.Pos{}
	}

	ref := l.rows[l.clampVisualRow(m.viewport.YOffset+y)]
	line := l.lines[ref.row]
	seg := line.segments[ref.seg]

	vx := x - m.gutterWidth()
	if vx < 0 {
		return buffer.Pos{Row: ref.row, Col: seg.StartCol}
	}
	if m.cfg.WrapMode == WrapNone {
		return buffer.Pos{Row: ref.row, Col: line.visual.colForCell(vx + m.xOffset)}
	}
	if vx >= seg.Cells() {
		return buffer.Pos{Row: ref.row, Col: seg.EndCol}
	}
	col := line.visual.colForCell(seg.StartCell + vx)
	return buffer.Pos{Row: ref.row, Col: clampInt(col, seg.StartCol, seg.EndCol)}
}

// docToScreenPos maps a document position to viewport-local coordinates.
//
// ok is false when the mapped coordinate is outside the visible viewport.
func (m *Model) docToScreenPos(p buffer.Pos) (x, y int, ok bool) {
	l := m.ensureLayout()
	if len(l.rows) == 0 {
		return 0, 0, false
	}
	row, cell := l.visualPos(p)
	if m.cfg.WrapMode == WrapNone {
		cell -= m.xOffset
	}
	x = cell + m.gutterWidth()
	y = row - m.viewport.YOffset
	if y < 0 || y >= m.visibleRows() || cell < 0 || x >= m.viewport.Width {
		return x, y, false
	}
	return x, y, true
}
