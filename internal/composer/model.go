// Package composer is the full-screen post composer: title, Markdown body
// with a formatting toolbar, tags, post type, and a rendered preview.
package composer

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/linguista/linguista/config"
	"github.com/linguista/linguista/draft"
	"github.com/linguista/linguista/editor"
)

type field int

const (
	fieldTitle field = iota
	fieldBody
	fieldTags
	fieldCount
)

// Options configures a composer session.
type Options struct {
	// Path is the draft file. It is created on first save.
	Path string

	Config config.Config
	Logger *log.Logger

	// Clipboard defaults to editor.DefaultClipboard.
	Clipboard editor.Clipboard
}

// status is shared between model copies so editor callbacks can report into
// the status line.
type status struct {
	text string
	err  bool
}

func (s *status) set(text string, isErr bool) {
	s.text, s.err = text, isErr
}

type Model struct {
	path   string
	draft  *draft.Draft
	saved  []byte
	logger *log.Logger

	title   textinput.Model
	tags    textinput.Model
	body    editor.Model
	preview viewport.Model
	help    help.Model
	keys    keyMap

	focus      field
	previewing bool
	quitArmed  bool
	status     *status

	width, height int
}

// New loads the draft at opts.Path, starting a fresh one when the file does
// not exist yet.
func New(opts Options) (Model, error) {
	d, err := draft.Load(opts.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		d = draft.New()
	case err != nil:
		return Model{}, err
	}

	engine, err := opts.Config.Engine()
	if err != nil {
		return Model{}, fmt.Errorf("composer: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = editor.DefaultClipboard()
	}

	st := &status{}
	style := editor.DefaultStyle()
	body := editor.New(editor.Config{
		Text:         d.Content,
		ShowLineNums: opts.Config.Editor.LineNumbers,
		Style:        style,
		TabWidth:     opts.Config.Editor.TabWidth,
		HistoryLimit: opts.Config.Editor.HistoryLimit,
		Clipboard:    clip,
		Engine:       engine,
		Highlighter:  editor.MarkdownHighlighter(engine.Rules(), style.Marker),
		OnFormatError: func(rule string, err error) {
			logger.Warn("format rejected", "rule", rule, "err", err)
			st.set(err.Error(), true)
		},
	})

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "Give your post a title"
	title.SetValue(d.Title)

	tags := textinput.New()
	tags.Prompt = "# "
	tags.Placeholder = "add tag"
	tags.CharLimit = 40

	saved, err := d.Markdown()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		path:    opts.Path,
		draft:   d,
		saved:   saved,
		logger:  logger,
		title:   title,
		tags:    tags,
		body:    body,
		preview: viewport.New(0, 0),
		help:    help.New(),
		keys:    defaultKeyMap(body.KeyMap()),
		status:  st,
	}
	m = m.setFocus(fieldTitle)
	if d.Title != "" {
		m = m.setFocus(fieldBody)
	}
	return m, nil
}

// Run opens the composer in the terminal and blocks until it quits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	m.logger.Info("composer started", "path", opts.Path)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Draft returns the draft as currently edited.
func (m Model) Draft() *draft.Draft {
	d := *m.draft
	d.Title = m.title.Value()
	d.Content = m.body.Value()
	d.Tags = append([]string(nil), m.draft.Tags...)
	return &d
}

// Dirty reports unsaved changes.
func (m Model) Dirty() bool {
	cur, err := m.Draft().Markdown()
	return err != nil || string(cur) != string(m.saved)
}

func (m Model) setFocus(f field) Model {
	m.focus = f
	m.title.Blur()
	m.tags.Blur()
	m.body = m.body.Blur()
	switch f {
	case fieldTitle:
		m.title.Focus()
	case fieldBody:
		m.body = m.body.Focus()
	case fieldTags:
		m.tags.Focus()
	}
	return m
}
