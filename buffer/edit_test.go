package buffer

import "testing"

func TestInsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Col: 1})
	v := b.Version()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.Version() != v+1 {
		t.Fatalf("version=%d, want %d", b.Version(), v+1)
	}
}

func TestInsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Col: 4}})

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}

	c, ok := b.LastChange()
	if !ok || c.Kind != ChangeEdit || len(c.Edits) != 1 {
		t.Fatalf("last change=%+v ok=%v", c, ok)
	}
	if c.Edits[0].Deleted != "ell" || c.Edits[0].Inserted != "i" {
		t.Fatalf("edit=%+v", c.Edits[0])
	}
}

func TestInsertText_CRLFNormalized(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a\r\nb")
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDeleteBackward_JoinsLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteForward_JoinsLines(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Col: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDeleteSelection_MultiLine(t *testing.T) {
	b := New("ab\ncd\nef", Options{})
	b.SetSelection(Range{Start: Pos{Col: 1}, End: Pos{Row: 2, Col: 1}})

	b.DeleteSelection()
	if got, want := b.Text(), "af"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestDelete_NoOpsKeepVersion(t *testing.T) {
	b := New("a", Options{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v {
		t.Fatalf("backspace at origin bumped version")
	}

	b.SetCursor(Pos{Col: 1})
	v = b.Version()
	b.DeleteForward()
	b.DeleteSelection()
	b.InsertText("")
	if b.Version() != v {
		t.Fatalf("no-op edits bumped version")
	}
}

func TestDeleteBackward_WholeCluster(t *testing.T) {
	b := New("e\u0301x", Options{})
	b.SetCursor(Pos{Col: 1})

	b.DeleteBackward()
	if got, want := b.Text(), "x"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
