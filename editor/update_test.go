package editor

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linguista/linguista/buffer"
	"github.com/linguista/linguista/format"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_TypingMovementAndDelete(t *testing.T) {
	m := New(Config{Text: "ab"})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(runes("X"))
	if got := m.Value(); got != "aXb" {
		t.Fatalf("text after insert: got %q, want %q", got, "aXb")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 2}) {
		t.Fatalf("cursor after insert: got %v, want %v", got, buffer.Pos{Row: 0, Col: 2})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after backspace: got %q, want %q", got, "ab")
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after backspace: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.Value(); got != "a\n b" {
		t.Fatalf("text after enter+space: got %q, want %q", got, "a\n b")
	}
}

func TestUpdate_ReadOnly_IgnoresMutations(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor after move: got %v, want %v", got, buffer.Pos{Row: 0, Col: 1})
	}

	m, _ = m.Update(runes("X"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(altKey('b'))
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after edits in read-only: got %q, want %q", got, "ab")
	}
}

func TestUpdate_UndoRedo(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("b"))
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after typing: got %q, want %q", got, "ab")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Value(); got != "a" {
		t.Fatalf("text after undo: got %q, want %q", got, "a")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after redo: got %q, want %q", got, "ab")
	}
}

func TestUpdate_BoldKeyWrapsSelection(t *testing.T) {
	m := New(Config{Text: "hello world"})
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	}
	m, _ = m.Update(altKey('b'))

	if got, want := m.Value(), "**hello** world"; got != want {
		t.Fatalf("text after bold: got %q, want %q", got, want)
	}
	r, ok := m.buf.Selection()
	if !ok || r.Start != (buffer.Pos{Col: 2}) || r.End != (buffer.Pos{Col: 7}) {
		t.Fatalf("selection after bold: got %v (%v), want 0:2-0:7", r, ok)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Value(); got != "hello world" {
		t.Fatalf("text after undo: got %q, want %q", got, "hello world")
	}
}

func TestUpdate_QuoteKeyOnCaret(t *testing.T) {
	m := New(Config{Text: "line one\nline two"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(altKey('q'))

	if got, want := m.Value(), "line one\n> line two"; got != want {
		t.Fatalf("text after quote: got %q, want %q", got, want)
	}
	if got := m.buf.Cursor(); got != (buffer.Pos{Row: 1, Col: 2}) {
		t.Fatalf("cursor after quote: got %v, want 1:2", got)
	}
	if _, ok := m.buf.Selection(); ok {
		t.Fatalf("caret formatting left a selection")
	}
}

func TestUpdate_ListKeys(t *testing.T) {
	m := New(Config{Text: "uno\ndos"})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftDown})
	m, _ = m.Update(altKey('n'))
	if got, want := m.Value(), "1. uno\ndos"; got != want {
		t.Fatalf("selection ending at column 0 numbered the next line: got %q", got)
	}

	m = New(Config{Text: "uno\ndos"})
	m, _ = m.Update(altKey('a'))
	m, _ = m.Update(altKey('n'))
	if got, want := m.Value(), "1. uno\n2. dos"; got != want {
		t.Fatalf("text after numbered: got %q, want %q", got, want)
	}

	m = New(Config{Text: "uno"})
	m, _ = m.Update(altKey('l'))
	if got, want := m.Value(), "- uno"; got != want {
		t.Fatalf("text after bullet: got %q, want %q", got, want)
	}
}

func TestUpdate_CustomFormatBinding(t *testing.T) {
	reg := format.DefaultRegistry()
	if err := reg.Register(format.Wrap("highlight", "==", "")); err != nil {
		t.Fatal(err)
	}
	km := DefaultKeyMap()
	km.Format = map[string]key.Binding{
		"highlight": key.NewBinding(key.WithKeys("alt+h")),
		"missing":   key.NewBinding(key.WithKeys("alt+m")),
	}

	var failed string
	var failErr error
	m := New(Config{
		Text:   "hi",
		KeyMap: km,
		Engine: format.NewEngine(format.WithRegistry(reg)),
		OnFormatError: func(rule string, err error) {
			failed, failErr = rule, err
		},
	})
	m.buf.SelectAll()

	m, _ = m.Update(altKey('h'))
	if got, want := m.Value(), "==hi=="; got != want {
		t.Fatalf("text after highlight: got %q, want %q", got, want)
	}

	m, _ = m.Update(altKey('m'))
	if failed != "missing" || !errors.Is(failErr, format.ErrUnknownRule) {
		t.Fatalf("format error: got %q %v, want missing/ErrUnknownRule", failed, failErr)
	}
	if got := m.Value(); got != "==hi==" {
		t.Fatalf("failed rule changed text: %q", got)
	}
}

func TestUpdate_FormatMsg(t *testing.T) {
	m := New(Config{Text: "x"})
	m.buf.SelectAll()
	m, _ = m.Update(FormatMsg{Rule: format.RuleStrikethrough})
	if got, want := m.Value(), "~~x~~"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	m, err := m.ApplyFormat("nope")
	if !errors.Is(err, format.ErrUnknownRule) {
		t.Fatalf("ApplyFormat err=%v, want ErrUnknownRule", err)
	}
}

func TestUpdate_ClipboardCopyCutPaste(t *testing.T) {
	cb := &memClipboard{}
	m := New(Config{Text: "hello", Clipboard: cb})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cb.s != "he" {
		t.Fatalf("clipboard after copy: got %q, want %q", cb.s, "he")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	if got := m.Value(); got != "llo" {
		t.Fatalf("text after cut: got %q, want %q", got, "llo")
	}

	cb.s = "a\r\nb"
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Value(); got != "a\nbllo" {
		t.Fatalf("text after paste: got %q, want %q", got, "a\nbllo")
	}
}

func TestUpdate_PasteEventInsertsLiterally(t *testing.T) {
	m := New(Config{Text: ""})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Paste: true, Alt: true})
	if got := m.Value(); got != "b" {
		t.Fatalf("text after paste event: got %q, want %q", got, "b")
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m := New(Config{Text: "ab"}).Blur()
	m, _ = m.Update(runes("X"))
	if got := m.Value(); got != "ab" {
		t.Fatalf("blurred editor accepted input: %q", got)
	}
}
