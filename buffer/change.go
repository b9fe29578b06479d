package buffer

// ChangeKind says which operation produced a Change.
type ChangeKind uint8

const (
	ChangeEdit ChangeKind = iota
	ChangeFormat
	ChangeUndo
	ChangeRedo
)

// Edit describes one replaced span. Before is in pre-change coordinates,
// After in post-change coordinates.
type Edit struct {
	Before   Range
	After    Range
	Inserted string
	Deleted  string
}

// Change is the record of the last effective mutation.
type Change struct {
	Kind          ChangeKind
	Rule          string // set for ChangeFormat
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  Pos
	CursorAfter   Pos
	Edits         []Edit
}

// LastChange returns the most recent text mutation.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLast {
		return Change{}, false
	}
	out := b.last
	out.Edits = append([]Edit(nil), b.last.Edits...)
	return out, true
}

type pending struct {
	kind    ChangeKind
	rule    string
	version uint64
	cursor  Pos
	snap    snapshot
	edits   []Edit
}

func (b *Buffer) begin(kind ChangeKind) *pending {
	return &pending{
		kind:    kind,
		version: b.version,
		cursor:  b.cursor,
		snap:    b.snapshot(),
	}
}

// commit finalizes p: bumps the version, records undo unless replaying
// history, and stores the change record.
func (b *Buffer) commit(p *pending) {
	b.version++
	if p.kind == ChangeEdit || p.kind == ChangeFormat {
		b.pushUndo(p.snap)
	}
	b.last = Change{
		Kind:          p.kind,
		Rule:          p.rule,
		VersionBefore: p.version,
		VersionAfter:  b.version,
		CursorBefore:  p.cursor,
		CursorAfter:   b.cursor,
		Edits:         p.edits,
	}
	b.hasLast = true
}

// wholeDocument returns the range spanning text.
func wholeDocument(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, Col: len(lines[last])}}
}
