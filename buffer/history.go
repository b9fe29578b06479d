package buffer

type snapshot struct {
	text   string
	cursor Pos
	sel    selection
}

type history struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selection{}
	if s.sel.active {
		anchor, head := b.clampPos(s.sel.anchor), b.clampPos(s.sel.head)
		if anchor != head {
			b.sel = selection{active: true, anchor: anchor, head: head}
		}
	}
}

func (b *Buffer) pushUndo(s snapshot) {
	limit := b.opt.HistoryLimit
	if limit < 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, s)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last edit. It reports false when there
// is nothing to undo.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	prev := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]
	b.replay(ChangeUndo, prev, &b.hist.redo)
	return true
}

// Redo re-applies the last undone edit.
func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	next := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]
	b.replay(ChangeRedo, next, &b.hist.undo)
	return true
}

func (b *Buffer) replay(kind ChangeKind, to snapshot, other *[]snapshot) {
	p := b.begin(kind)
	*other = append(*other, p.snap)
	b.restore(to)
	if p.snap.text != to.text {
		p.edits = []Edit{{
			Before:   wholeDocument(p.snap.text),
			After:    wholeDocument(to.text),
			Inserted: to.text,
			Deleted:  p.snap.text,
		}}
	}
	b.commit(p)
}
