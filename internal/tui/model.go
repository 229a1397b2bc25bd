package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/vshell/internal/shell"
)

// chromeHeight is the number of rows below the transcript: prompt and help.
const chromeHeight = 2

// Model is the full-screen shell. It translates key events into Session
// actions and renders the transcript; all state lives in the Session.
type Model struct {
	session  *shell.Session
	keys     KeyMap
	viewport viewport.Model
	ready    bool
	quitting bool

	// failed holds the IDs of response lines produced by failed commands.
	failed map[string]bool
}

// NewModel creates a Model driving s.
func NewModel(s *shell.Session) Model {
	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		failed:  make(map[string]bool),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buf := m.session.Buffer()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		res := m.session.Submit()
		if res.Err != nil {
			if lines := m.session.Transcript(); len(lines) > 0 {
				m.failed[lines[len(lines)-1].ID] = true
			}
		}
		if res.Exit {
			m.quitting = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Complete):
		m.session.Complete()
	case key.Matches(msg, m.keys.HistoryUp):
		m.session.HistoryUp()
	case key.Matches(msg, m.keys.HistoryDown):
		m.session.HistoryDown()
	case key.Matches(msg, m.keys.ClearScreen):
		m.session.ClearScreen()
	case key.Matches(msg, m.keys.Left):
		buf.Left()
	case key.Matches(msg, m.keys.Right):
		buf.Right()
	case key.Matches(msg, m.keys.Home):
		buf.Home()
	case key.Matches(msg, m.keys.End):
		buf.End()
	case key.Matches(msg, m.keys.Backspace):
		buf.Backspace()
	case key.Matches(msg, m.keys.Delete):
		buf.Delete()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			buf.Insert(string(msg.Runes))
		case tea.KeySpace:
			buf.Insert(" ")
		}
	}

	m.refresh()
	return m, nil
}

// refresh re-renders the transcript and scrolls to the latest line.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	lines := m.session.Transcript()
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		switch {
		case l.IsCommand:
			rendered = append(rendered, renderCommandLine(l.Text))
		case m.failed[l.ID]:
			rendered = append(rendered, ErrorStyle.Render(l.Text))
		default:
			rendered = append(rendered, OutputStyle.Render(l.Text))
		}
	}
	return strings.Join(rendered, "\n")
}

// renderCommandLine colors "user@host:/path$ cmd" as prompt plus command.
func renderCommandLine(text string) string {
	i := strings.Index(text, "$ ")
	if i < 0 {
		return CommandStyle.Render(text)
	}
	return PromptStyle.Render(text[:i+1]) + " " + CommandStyle.Render(text[i+2:])
}

func (m Model) inputLine() string {
	buf := m.session.Buffer()
	runes := []rune(buf.Value())
	pos := buf.Pos()

	under := " "
	after := ""
	if pos < len(runes) {
		under = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return PromptStyle.Render(m.session.Prompt()) + " " +
		string(runes[:pos]) + CursorStyle.Render(under) + after
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "starting…"
	}
	return m.viewport.View() + "\n" + m.inputLine() + "\n" + HelpStyle.Render(m.keys.HelpText())
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
