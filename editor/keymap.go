package editor

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linguista/linguista/format"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding
	SelectAll                                 key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding

	// Formatting toolbar.
	Bold, Italic, Strikethrough, Code key.Binding
	Quote, Bullet, Numbered           key.Binding

	// Format binds additional rule names to keys. Entries are checked after
	// the toolbar bindings, in rule name order.
	Format map[string]key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "top")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "bottom")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Bold:          key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Strikethrough: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "strike")),
		Code:          key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code")),
		Quote:         key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
		Bullet:        key.NewBinding(key.WithKeys("alt+l"), key.WithHelp("alt+l", "list")),
		Numbered:      key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbered")),
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Right.Keys()) == 0 && len(km.Enter.Keys()) == 0
}

type formatBinding struct {
	rule    string
	binding key.Binding
}

func (km KeyMap) formatBindings() []formatBinding {
	out := []formatBinding{
		{format.RuleBold, km.Bold},
		{format.RuleItalic, km.Italic},
		{format.RuleStrikethrough, km.Strikethrough},
		{format.RuleCode, km.Code},
		{format.RuleQuote, km.Quote},
		{format.RuleBullet, km.Bullet},
		{format.RuleNumbered, km.Numbered},
	}
	names := make([]string, 0, len(km.Format))
	for name := range km.Format {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, formatBinding{name, km.Format[name]})
	}
	return out
}

// FormatRule reports the rule bound to msg.
func (km KeyMap) FormatRule(msg tea.KeyMsg) (string, bool) {
	for _, fb := range km.formatBindings() {
		if key.Matches(msg, fb.binding) {
			return fb.rule, true
		}
	}
	return "", false
}

// ShortHelp implements help.KeyMap with the formatting toolbar.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Bold, km.Italic, km.Quote, km.Bullet, km.Numbered, km.Undo}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	toolbar := make([]key.Binding, 0, 7+len(km.Format))
	for _, fb := range km.formatBindings() {
		toolbar = append(toolbar, fb.binding)
	}
	return [][]key.Binding{
		toolbar,
		{km.Undo, km.Redo, km.Copy, km.Cut, km.Paste, km.SelectAll},
		{km.WordLeft, km.WordRight, km.Home, km.End, km.DocStart, km.DocEnd},
	}
}
