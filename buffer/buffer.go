package buffer

import (
	"strings"

	"github.com/linguista/linguista/internal/grapheme"
)

// Options configures a Buffer.
type Options struct {
	// HistoryLimit caps undo steps. 0 means 500; negative disables history.
	HistoryLimit int
}

const defaultHistoryLimit = 500

type selection struct {
	active bool
	anchor Pos
	head   Pos
}

// Buffer holds the document text, cursor and selection. It is not safe for
// concurrent use; the editor owns it from a single Update loop.
type Buffer struct {
	lines   [][]string
	version uint64

	cursor Pos
	sel    selection

	opt  Options
	hist history

	last    Change
	hasLast bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = defaultHistoryLimit
	}
	return &Buffer{lines: splitLines(text), opt: opt}
}

// Text returns the document joined with '\n'.
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// Version increases on every visible change (text, cursor or selection).
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

// SetCursor moves the cursor and drops the selection.
func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selection{}
	b.version++
}

// Selection returns the normalized selection. An empty selection reports
// false.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.sel.head {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.head}), true
}

// SetSelection selects r (anchor r.Start, head r.End) and puts the cursor on
// the head. An empty r clears the selection and places the cursor there.
func (b *Buffer) SetSelection(r Range) {
	anchor, head := b.clampPos(r.Start), b.clampPos(r.End)
	next := selection{active: anchor != head, anchor: anchor, head: head}
	if !next.active {
		next = selection{}
	}
	if next == b.sel && b.cursor == head {
		return
	}
	b.sel = next
	b.cursor = head
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selection{}
	b.version++
}

// SelectAll selects the whole document.
func (b *Buffer) SelectAll() {
	last := len(b.lines) - 1
	b.SetSelection(Range{End: Pos{Row: last, Col: len(b.lines[last])}})
}

// SelectedText returns the text under the selection, or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textInRange(b.lines, r)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(text, "\n")
	lines := make([][]string, len(parts))
	for i, s := range parts {
		lines[i] = grapheme.Split(s)
	}
	return lines
}

func textInRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.Col:r.End.Col])
	}
	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.Col
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
