package buffer

import "testing"

func TestUndoRedo_RoundTrip(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Col: 2})
	b.InsertText("c")
	b.InsertText("d")

	if !b.Undo() {
		t.Fatalf("undo failed")
	}
	if got, want := b.Text(), "abc"; got != want {
		t.Fatalf("text after undo=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 3}); got != want {
		t.Fatalf("cursor after undo=%v, want %v", got, want)
	}
	if !b.CanRedo() {
		t.Fatalf("expected redo available")
	}

	if !b.Redo() {
		t.Fatalf("redo failed")
	}
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text after redo=%q, want %q", got, want)
	}

	c, ok := b.LastChange()
	if !ok || c.Kind != ChangeRedo || len(c.Edits) != 1 {
		t.Fatalf("last change=%+v", c)
	}
}

func TestUndo_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("redo should be cleared by a new edit")
	}
	if b.Redo() {
		t.Fatalf("redo reported success on empty stack")
	}
}

func TestUndo_RestoresSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Col: 0}, End: Pos{Col: 5}})
	b.InsertText("bye")
	b.Undo()

	if got := b.SelectedText(); got != "hello" {
		t.Fatalf("selection after undo=%q, want %q", got, "hello")
	}
}

func TestHistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	for _, s := range []string{"a", "b", "c"} {
		b.InsertText(s)
	}
	if !b.Undo() || !b.Undo() {
		t.Fatalf("expected two undo steps")
	}
	if b.Undo() {
		t.Fatalf("undo beyond limit")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	off := New("", Options{HistoryLimit: -1})
	off.InsertText("x")
	if off.CanUndo() {
		t.Fatalf("history disabled but undo available")
	}
}
