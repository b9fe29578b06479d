package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linguista/linguista/markdown"
)

type savedMsg struct {
	data []byte
	err  error
}

// headerHeight covers the title, meta and rule lines; footerHeight the
// status and help lines.
const (
	headerHeight = 3
	footerHeight = 3
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil
	case savedMsg:
		return m.handleSaved(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.previewing {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}
		// Shift mouse rows into editor coordinates.
		msg.Y -= headerHeight
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	if !key.Matches(msg, k.Quit) {
		m.quitArmed = false
	}

	switch {
	case key.Matches(msg, k.Quit):
		if m.Dirty() && !m.quitArmed {
			m.quitArmed = true
			m.status.set("unsaved changes; press ctrl+q again to quit", true)
			return m, nil
		}
		return m, tea.Quit
	case key.Matches(msg, k.Save):
		return m, m.save()
	case key.Matches(msg, k.Preview):
		return m.togglePreview(), nil
	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.resize(m.width, m.height), nil
	case key.Matches(msg, k.Kind):
		m.draft.Kind = m.draft.Kind.Next()
		m.status.set("post type: "+m.draft.Kind.Label(), false)
		return m, nil
	}

	if m.previewing {
		if msg.Type == tea.KeyEsc {
			return m.togglePreview(), nil
		}
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, k.NextField):
		return m.setFocus((m.focus + 1) % fieldCount), nil
	case key.Matches(msg, k.PrevField):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
	}

	switch m.focus {
	case fieldTitle:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyTab {
			return m.setFocus(fieldBody), nil
		}
	case fieldTags:
		switch {
		case key.Matches(msg, k.AddTag):
			return m.addTag(), nil
		case key.Matches(msg, k.RemoveTag) && m.tags.Value() == "":
			if n := len(m.draft.Tags); n > 0 {
				m.draft.RemoveTag(m.draft.Tags[n-1])
			}
			return m, nil
		case msg.Type == tea.KeyTab:
			return m.setFocus(fieldTitle), nil
		}
	}
	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	case fieldBody:
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

func (m Model) addTag() Model {
	tag := strings.TrimPrefix(strings.TrimSpace(m.tags.Value()), "#")
	if m.draft.AddTag(tag) {
		m.status.set("tag added: "+tag, false)
	} else if tag != "" {
		m.status.set("tag already present: "+tag, true)
	}
	m.tags.Reset()
	return m
}

func (m Model) togglePreview() Model {
	m.previewing = !m.previewing
	if m.previewing {
		d := m.Draft()
		m.preview.SetContent(previewText(d.DisplayTitle(), d.Content))
		m.preview.GotoTop()
	}
	return m
}

func previewText(title, content string) string {
	var sb strings.Builder
	sb.WriteString(previewTitleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(markdown.Text(content))
	return sb.String()
}

func (m Model) resize(w, h int) Model {
	m.width, m.height = w, h
	m.help.Width = w
	bodyH := max(h-headerHeight-footerHeight, 1)
	if m.help.ShowAll {
		bodyH = max(bodyH-len(m.keys.FullHelp())+1, 1)
	}
	m.body = m.body.SetSize(w, bodyH)
	m.preview.Width = w
	m.preview.Height = bodyH
	m.title.Width = max(w-len("Title: ")-1, 1)
	return m
}

// save writes the current draft in the background.
func (m Model) save() tea.Cmd {
	d := m.Draft()
	path := m.path
	return func() tea.Msg {
		if err := d.Save(path); err != nil {
			return savedMsg{err: err}
		}
		data, err := d.Markdown()
		return savedMsg{data: data, err: err}
	}
}

func (m Model) handleSaved(msg savedMsg) Model {
	if msg.err != nil {
		m.logger.Error("save failed", "path", m.path, "err", msg.err)
		m.status.set("save failed: "+msg.err.Error(), true)
		return m
	}
	m.saved = msg.data
	m.logger.Info("draft saved", "path", m.path, "bytes", len(msg.data))

	if err := m.Draft().Validate(); err != nil {
		m.status.set(fmt.Sprintf("saved %s; not ready to publish: %s", m.path, strings.ReplaceAll(err.Error(), "\n", ", ")), false)
		return m
	}
	m.status.set("saved "+m.path+"; ready to publish", false)
	return m
}
