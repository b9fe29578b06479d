package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/linguista/linguista/buffer"
	"github.com/linguista/linguista/format"
)

// Model is a Bubble Tea component that renders and edits a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int
	layout   *layout

	lastVersion uint64

	mouseAnchor   buffer.Pos
	mouseDragging bool
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	// The editor owns the keyboard; the viewport only scrolls on the wheel.
	m.viewport.KeyMap = viewport.KeyMap{}
	m.lastVersion = m.buf.Version()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Engine() *format.Engine { return m.cfg.Engine }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Value returns the document text.
func (m Model) Value() string { return m.buf.Text() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Width() int  { return m.viewport.Width }
func (m Model) Height() int { return m.viewport.Height }

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.mouseDragging = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// FormatMsg asks the editor to apply a rule, for hosts with their own
// toolbar.
type FormatMsg struct{ Rule string }

// Format returns a command producing FormatMsg.
func Format(rule string) tea.Cmd {
	return func() tea.Msg { return FormatMsg{Rule: rule} }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	follow := true
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		// Wheel scrolling must not snap back to the cursor.
		follow = !isWheel(msg)
	case FormatMsg:
		m.applyFormat(msg.Rule)
	}
	m.syncFromBuffer(follow)
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// ApplyFormat runs rule against the current selection.
func (m Model) ApplyFormat(rule string) (Model, error) {
	if m.cfg.ReadOnly {
		return m, nil
	}
	err := m.buf.ApplyFormat(m.cfg.Engine, rule)
	m.syncFromBuffer(true)
	return m, err
}

func (m *Model) applyFormat(rule string) {
	if m.cfg.ReadOnly {
		return
	}
	if err := m.buf.ApplyFormat(m.cfg.Engine, rule); err != nil && m.cfg.OnFormatError != nil {
		m.cfg.OnFormatError(rule, err)
	}
}

// syncFromBuffer re-renders after a buffer change, including changes a host
// made directly through Buffer.
func (m *Model) syncFromBuffer(follow bool) {
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return
	}
	since := m.lastVersion
	m.lastVersion = ver
	m.rebuildContent()
	if follow {
		m.followCursor()
		m.rebuildContent()
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, since))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m Model) visibleRows() int {
	return m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
}

// followCursor scrolls the viewport so the cursor row is visible and, without
// wrapping, shifts the view horizontally to the cursor cell.
func (m *Model) followCursor() {
	h := m.visibleRows()
	if h <= 0 {
		return
	}
	l := m.ensureLayout()
	row, cell := l.visualPos(m.buf.Cursor())

	y := m.viewport.YOffset
	switch {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	}

	if m.cfg.WrapMode != WrapNone {
		m.xOffset = 0
		return
	}
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	prev := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}
