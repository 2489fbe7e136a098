// Package tui is the chat widget: a message log, a text input and a
// level selector in front of the tutorchat endpoint. One request may be
// in flight at a time; the busy flag is the whole state machine.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tutorchat/internal/client"
	"tutorchat/internal/sanitize"
	"tutorchat/internal/services"
)

const (
	// Appending auto-scrolls only when the reader is already within this
	// many lines of the bottom, so a manual scroll-back position survives
	// new messages.
	scrollStickLines = 50

	transportErrText = "Error reaching server."
)

var levels = []string{services.LevelBeginner, services.LevelAdvanced}

// SendFunc posts one turn to the backend. It is a field rather than a
// hard dependency so tests can substitute the network call.
type SendFunc func(ctx context.Context, chatID, level, message string) (*client.Result, error)

// Entry is one block in the message log.
type Entry struct {
	Text     string
	FromUser bool
	Typing   bool // transient placeholder, always the last entry when present
}

type replyMsg struct {
	res *client.Result
	err error
}

type Model struct {
	send SendFunc

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	entries  []Entry
	chatID   string // empty until the first successful reply
	levelIdx int
	busy     bool
	ready    bool
	width    int
	height   int
}

func New(send SendFunc) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask your tutor anything..."
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		send:    send,
		input:   ti,
		spinner: sp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := msg.Height - chromeHeight
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.viewport.SetContent(m.renderLog())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			if !m.busy {
				m.levelIdx = (m.levelIdx + 1) % len(levels)
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}

	case replyMsg:
		return m.receive(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if !m.busy {
			// Placeholder is gone, stop ticking.
			return m, nil
		}
		m.viewport.SetContent(m.renderLog())
		return m, cmd
	}

	var inputCmd, vpCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	return m, tea.Batch(inputCmd, vpCmd)
}

// submit starts one send cycle: user entry first, then the typing
// placeholder, then the network call.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return m, nil
	}

	m.appendEntry(Entry{Text: text, FromUser: true})
	m.appendEntry(Entry{Typing: true})
	m.busy = true
	m.input.SetValue("")

	send := m.send
	chatID := m.chatID
	level := levels[m.levelIdx]

	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			res, err := send(context.Background(), chatID, level, text)
			return replyMsg{res: res, err: err}
		},
	)
}

// receive ends the cycle: the placeholder goes before the final entry is
// appended, and the widget always returns to an interactive state.
func (m Model) receive(msg replyMsg) (tea.Model, tea.Cmd) {
	m.dropTypingEntry()
	m.busy = false

	var apiErr *client.APIError
	switch {
	case msg.err == nil:
		m.chatID = msg.res.ChatID
		m.appendEntry(Entry{Text: sanitize.Strip(msg.res.Content)})
	case errors.As(msg.err, &apiErr):
		m.appendEntry(Entry{Text: "Error: " + apiErr.Message})
	default:
		m.appendEntry(Entry{Text: transportErrText})
	}

	return m, nil
}

func (m *Model) appendEntry(e Entry) {
	stick := m.nearBottom()
	m.entries = append(m.entries, e)
	m.viewport.SetContent(m.renderLog())
	if stick {
		m.viewport.GotoBottom()
	}
}

func (m *Model) dropTypingEntry() {
	if n := len(m.entries); n > 0 && m.entries[n-1].Typing {
		m.entries = m.entries[:n-1]
		m.viewport.SetContent(m.renderLog())
	}
}

func (m Model) nearBottom() bool {
	if !m.ready {
		return true
	}
	return m.viewport.TotalLineCount()-(m.viewport.YOffset+m.viewport.Height) <= scrollStickLines
}
