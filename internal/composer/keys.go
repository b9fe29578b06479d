package composer

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/linguista/linguista/editor"
)

type keyMap struct {
	NextField, PrevField key.Binding
	Kind                 key.Binding
	Preview              key.Binding
	Save                 key.Binding
	Help                 key.Binding
	Quit                 key.Binding

	AddTag, RemoveTag key.Binding

	editor editor.KeyMap
}

func defaultKeyMap(ed editor.KeyMap) keyMap {
	return keyMap{
		NextField: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Kind:      key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "post type")),
		Preview:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "preview")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s", "ctrl+w"), key.WithHelp("ctrl+s", "save")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),

		AddTag:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add tag")),
		RemoveTag: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "remove tag")),

		editor: ed,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Save, k.Preview, k.NextField, k.Help, k.Quit}, k.editor.ShortHelp()...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{
		{k.NextField, k.PrevField, k.Kind, k.Preview, k.Save, k.Help, k.Quit},
		{k.AddTag, k.RemoveTag},
	}, k.editor.FullHelp()...)
}
