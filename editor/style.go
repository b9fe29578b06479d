package editor

import "github.com/charmbracelet/lipgloss"

// Style holds one lipgloss style per part of the composer's text area.
// Highlight spans are layered over Text; Cursor and Selection win over both.
type Style struct {
	// Line number column. LineNumActive marks the cursor row while focused.
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Marker is handed to MarkdownHighlighter for `**`, `> ` and friends.
	Marker lipgloss.Style
}

// DefaultStyle is a dim gutter, a reverse-video cursor and violet Markdown
// markers on a 256-color palette.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("105")),
	}
}
