package buffer

import (
	"fmt"

	"github.com/linguista/linguista/format"
)

// ApplyFormat runs rule over the selection (or the cursor when nothing is
// selected) and replaces the document with the result as one undoable step.
// A non-empty result selection stays selected; otherwise the cursor lands on
// the caret. On error the buffer is unchanged.
func (b *Buffer) ApplyFormat(e *format.Engine, rule string) error {
	if e == nil {
		return fmt.Errorf("apply %s: nil engine", rule)
	}
	u := e.Unit()

	r, ok := b.Selection()
	if !ok {
		r = Range{Start: b.cursor, End: b.cursor}
	}
	start, _ := b.OffsetFromPos(r.Start, u)
	end, _ := b.OffsetFromPos(r.End, u)

	before := b.Text()
	res, err := e.Apply(before, format.Selection{Start: start, End: end}, rule)
	if err != nil {
		return fmt.Errorf("apply %s: %w", rule, err)
	}

	p := b.begin(ChangeFormat)
	p.rule = rule

	b.lines = splitLines(res.Text)
	selStart, okStart := b.PosFromOffset(res.Selection.Start, u)
	selEnd, okEnd := b.PosFromOffset(res.Selection.End, u)
	if !okStart || !okEnd {
		// The engine always returns offsets valid for its own text.
		b.restore(p.snap)
		return fmt.Errorf("apply %s: %w: result %s", rule, format.ErrInvalidSelection, res.Selection)
	}

	b.cursor = selEnd
	b.sel = selection{}
	if selStart != selEnd {
		b.sel = selection{active: true, anchor: selStart, head: selEnd}
	}
	if res.Text != before {
		p.edits = []Edit{{
			Before:   wholeDocument(before),
			After:    wholeDocument(res.Text),
			Inserted: res.Text,
			Deleted:  before,
		}}
	}
	if len(p.edits) == 0 && b.cursor == p.cursor && b.sel == p.snap.sel {
		return nil
	}
	b.commit(p)
	return nil
}
