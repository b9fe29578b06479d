package editor

import "github.com/linguista/linguista/format"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	WrapMode     WrapMode
	// TabWidth is the tab stop distance in cells. Zero means 4.
	TabWidth int

	// Forwarded to buffer.Options.
	HistoryLimit int

	// ReadOnly keeps movement, selection and copy but ignores every edit.
	ReadOnly bool

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// Clipboard backs copy, cut and paste. Nil disables them.
	Clipboard Clipboard

	// Engine runs formatting keys. Nil means format.NewEngine() with the
	// built-in rules.
	Engine *format.Engine

	// Highlighter styles spans of each line. Nil disables highlighting.
	Highlighter Highlighter

	// OnChange is called after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// OnFormatError is called when a formatting key fails, for example
	// because its rule is not registered in Engine.
	OnFormatError func(rule string, err error)
}

func (c Config) normalized() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.Engine == nil {
		c.Engine = format.NewEngine()
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
