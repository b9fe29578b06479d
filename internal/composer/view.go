package composer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

var (
	labelStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("105")).Bold(true)
	tagStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	ruleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	statusStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	errorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	previewTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dialogStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("203")).
				Padding(0, 2)
)

func (m Model) label(text string, f field) string {
	if m.focus == f && !m.previewing {
		return focusLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.label("Title: ", fieldTitle))
	sb.WriteString(m.title.View())
	sb.WriteByte('\n')

	sb.WriteString(labelStyle.Render("Type: "))
	sb.WriteString(m.draft.Kind.Label())
	sb.WriteString("   ")
	sb.WriteString(m.label("Tags: ", fieldTags))
	for _, t := range m.draft.Tags {
		sb.WriteString(tagStyle.Render("#" + t))
		sb.WriteByte(' ')
	}
	if m.focus == fieldTags {
		sb.WriteString(m.tags.View())
	}
	sb.WriteByte('\n')
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", max(m.width, 1))))
	sb.WriteByte('\n')

	if m.previewing {
		sb.WriteString(m.preview.View())
	} else {
		sb.WriteString(m.body.View())
	}
	sb.WriteByte('\n')
	sb.WriteString(ruleStyle.Render(strings.Repeat("─", max(m.width, 1))))
	sb.WriteByte('\n')

	st := statusStyle
	if m.status.err {
		st = errorStyle
	}
	mode := "edit"
	if m.previewing {
		mode = "preview"
	}
	dirty := ""
	if m.Dirty() {
		dirty = " [modified]"
	}
	sb.WriteString(st.Render(mode + dirty + "  " + m.status.text))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))

	if m.quitArmed {
		return m.confirmQuit(sb.String())
	}
	return sb.String()
}

// confirmQuit draws the unsaved-changes dialog centred over screen.
func (m Model) confirmQuit(screen string) string {
	quit := m.keys.Quit.Help().Key
	box := dialogStyle.Render(
		errorStyle.Render("Unsaved changes") + "\n\n" +
			quit + " again quits without saving\n" +
			"any other key keeps editing",
	)
	x := max((m.width-lipgloss.Width(box))/2, 0)
	y := max((m.height-lipgloss.Height(box))/2, 0)
	return overlay.Composite(box, screen, overlay.Left, overlay.Top, x, y)
}
