package textfield

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/fieldedit/buffer"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	// xOffset is the first visible grapheme when the text is wider than
	// cfg.Width.
	xOffset int
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.EchoMask == 0 {
		cfg.EchoMask = '•'
	}
	buf := cfg.Buffer
	if buf == nil {
		buf = buffer.New(cfg.Text, buffer.Options{Placeholder: cfg.Placeholder})
	}
	return Model{cfg: cfg, buf: buf}
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.cfg.Width }

func (m Model) SetPrompt(prompt string) Model {
	m.cfg.Prompt = prompt
	return m
}

func (m Model) SetSecure(secure bool) Model {
	m.cfg.Secure = secure
	return m
}

// Focus starts an editing session on the buffer.
func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.buf.BeginEditing()
		m.followCursor()
	}
	return m
}

// Blur ends the editing session; delegates typically canonicalize the text
// here.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.buf.EndEditing()
		m.xOffset = 0
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd := m.updateKey(msg)
		m.followCursor()
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) followCursor() {
	m.xOffset = m.visibleStart(m.displayClusters())
}
