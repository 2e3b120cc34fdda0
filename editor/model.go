package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/autolist/buffer"
)

// Model is a Bubble Tea component that renders and edits an attributed
// buffer, with list autoformatting on typed input.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model
	xOffset  int

	mouseAnchor   int
	mouseDragging bool

	lastBufVersion uint64
	lastCursor     int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text, buffer.Options{
			HistoryLimit: cfg.HistoryLimit,
			Attributes:   cfg.Attributes,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

// Buffer returns the document. Hosts may mutate it directly; the editor
// picks the changes up on its next Update.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Config() Config { return m.cfg }

// SetConfig replaces the rendering, key and autoformat settings. The buffer
// is kept, so Text and HistoryLimit are ignored.
func (m Model) SetConfig(cfg Config) Model {
	cfg.Text = m.cfg.Text
	cfg.HistoryLimit = m.cfg.HistoryLimit
	m.cfg = normalizeConfig(cfg)
	m.refresh(true)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.refresh(true)
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.refresh(true)
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
		m.syncFromBuffer(true)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		// Wheel scrolling must survive the sync, so only presses follow.
		m.syncFromBuffer(msg.Action == tea.MouseActionPress && !isWheel(msg))
		return m, cmd
	default:
		m.syncFromBuffer(true)
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after the buffer changed and emits OnChange.
func (m *Model) syncFromBuffer(follow bool) {
	if m.buf == nil {
		return
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.refresh(follow)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// refresh re-renders and, when follow is set, scrolls to the cursor. The
// viewport clamps offsets against its content, so content comes first.
func (m *Model) refresh(follow bool) {
	m.rebuildContent()
	if !follow {
		return
	}
	x := m.xOffset
	m.followCursor()
	if m.xOffset != x {
		m.rebuildContent()
	}
}

// followCursor scrolls the viewport so the cursor cell stays visible.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	lay := m.layout()
	row, cell := lay.cursorCell(m.buf.Cursor())

	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		y := m.viewport.YOffset
		switch {
		case row < y:
			m.viewport.SetYOffset(row)
		case row >= y+h:
			m.viewport.SetYOffset(row - h + 1)
		}
	}

	w := m.contentWidth(lay)
	if m.cfg.SoftWrap || w <= 0 {
		m.xOffset = 0
		return
	}
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
}
