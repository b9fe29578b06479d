package buffer

import (
	"strings"

	"github.com/linguista/linguista/internal/grapheme"
)

// InsertText inserts s at the cursor, replacing the selection if any.
func (b *Buffer) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(r, s)
}

func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the selection, or the cluster (or line break) before
// the cursor.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col > 0:
		b.edit(Range{Start: Pos{Row: row, Col: col - 1}, End: b.cursor}, "")
	case row > 0:
		b.edit(Range{Start: Pos{Row: row - 1, Col: len(b.lines[row-1])}, End: b.cursor}, "")
	}
}

// DeleteForward removes the selection, or the cluster (or line break) after
// the cursor.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
		return
	}
	row, col := b.cursor.Row, b.cursor.Col
	switch {
	case col < len(b.lines[row]):
		b.edit(Range{Start: b.cursor, End: Pos{Row: row, Col: col + 1}}, "")
	case row < len(b.lines)-1:
		b.edit(Range{Start: b.cursor, End: Pos{Row: row + 1}}, "")
	}
}

// DeleteSelection removes the selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.edit(r, "")
	}
}

// edit replaces r with text as one undoable step and collapses the selection
// onto the end of the inserted text.
func (b *Buffer) edit(r Range, text string) {
	p := b.begin(ChangeEdit)
	end, applied, changed := b.replaceRange(r, text)
	if !changed {
		return
	}
	b.cursor = end
	b.sel = selection{}
	p.edits = append(p.edits, applied)
	b.commit(p)
}

func (b *Buffer) replaceRange(r Range, text string) (end Pos, applied Edit, changed bool) {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})
	deleted := textInRange(b.lines, r)
	if deleted == text {
		return b.cursor, Edit{}, false
	}

	head := b.lines[r.Start.Row][:r.Start.Col]
	tail := b.lines[r.End.Row][r.End.Col:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, part := range parts {
		repl[i] = grapheme.Split(part)
	}
	last := len(repl) - 1
	end = Pos{Row: r.Start.Row + last, Col: len(repl[last])}
	if last == 0 {
		end.Col += len(head)
	}
	repl[0] = append(append([]string(nil), head...), repl[0]...)
	repl[last] = append(repl[last], tail...)

	out := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	return end, Edit{
		Before:   r,
		After:    Range{Start: r.Start, End: end},
		Inserted: text,
		Deleted:  deleted,
	}, true
}
