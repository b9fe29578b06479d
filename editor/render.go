package editor

import (
	"fmt"
	"strings"

	"github.com/linguista/linguista/buffer"
)

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(fmt.Sprintf("%d", lineCount))
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// contentWidth is the number of cells available for text.
func (m Model) contentWidth() int {
	return max(m.viewport.Width-m.gutterWidth(), 0)
}

// wrapWidth keeps one column free for the end-of-line cursor.
func (m Model) wrapWidth() int {
	w := m.contentWidth()
	if w > 1 {
		w--
	}
	return w
}

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}
	l := m.ensureLayout()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	digits := gutterDigits(len(l.lines))

	highlights := make([][]HighlightSpan, len(l.lines))
	if m.cfg.Highlighter != nil {
		for row, line := range l.lines {
			highlights[row] = m.highlightLine(row, line, cursor)
		}
	}

	left, right := 0, -1
	if m.cfg.WrapMode == WrapNone && m.contentWidth() > 0 {
		left = max(m.xOffset, 0)
		right = left + m.contentWidth()
	}

	out := make([]string, 0, len(l.rows))
	for _, ref := range l.rows {
		line := l.lines[ref.row]
		seg := line.segments[ref.seg]

		var sb strings.Builder
		if m.cfg.ShowLineNums {
			num := strings.Repeat(" ", digits)
			if ref.seg == 0 {
				num = fmt.Sprintf("%*d", digits, ref.row+1)
			}
			st := m.cfg.Style.LineNum
			if m.focused && ref.row == cursor.Row {
				st = m.cfg.Style.LineNumActive
			}
			sb.WriteString(st.Render(num))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		segLeft, segRight := seg.StartCell, seg.EndCell+1
		if right >= 0 {
			segLeft, segRight = left, right
		}
		last := ref.seg == len(line.segments)-1
		sb.WriteString(m.renderSegment(line.visual, ref.row, seg, segLeft, segRight, last, cursor, sel, selOK, highlights[ref.row]))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightLine(row int, line layoutLine, cursor buffer.Pos) []HighlightSpan {
	ctx := LineContext{Row: row, Text: line.text, CursorCol: -1}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorCol = clampInt(cursor.Col, 0, line.visual.Len())
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, line.visual.Len())
}

// renderSegment draws the cells of seg that fall in [left, right). A wide
// cluster cut by the edge is drawn as blanks to keep columns aligned.
func (m *Model) renderSegment(vl visualLine, row int, seg wrappedSegment, left, right int, last bool, cursor buffer.Pos, sel buffer.Range, selOK bool, highlights []HighlightSpan) string {
	st := m.cfg.Style
	hasCursor := m.focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionCols(sel, selOK, row, vl.Len())

	var sb strings.Builder
	for _, c := range vl.cells[seg.StartCol:seg.EndCol] {
		l := max(c.Start, left)
		r := min(c.Start+c.Width, right)
		if l >= r {
			continue
		}
		text := c.Text
		if r-l != c.Width {
			text = strings.Repeat(" ", r-l)
		}

		switch {
		case hasCursor && c.Col == cursor.Col:
			sb.WriteString(st.Cursor.Render(text))
		case hasSel && c.Col >= selStart && c.Col < selEnd:
			sb.WriteString(st.Selection.Render(text))
		default:
			style := st.Text
			if hs, ok := styleAt(highlights, c.Col); ok {
				style = hs.Inherit(st.Text)
			}
			sb.WriteString(style.Render(text))
		}
	}

	// The cursor past the last cluster is drawn as a one-cell placeholder.
	if hasCursor && last && cursor.Col >= vl.Len() {
		if eol := vl.width; eol >= left && eol < right {
			sb.WriteString(st.Cursor.Render(" "))
		}
	}
	return sb.String()
}

// selectionCols returns the selected cluster columns of row.
func selectionCols(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = clampInt(sel.Start.Col, 0, lineLen)
	}
	if row == sel.End.Row {
		end = clampInt(sel.End.Col, 0, lineLen)
	}
	return start, end, start < end
}
