package console

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/verbs/internal/ui/style"
	"github.com/footprint-tools/verbs/internal/usage"
)

type keyMap struct {
	Submit key.Binding
	Prev   key.Binding
	Next   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "run")),
	Prev:   key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
	Next:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("^D", "quit")),
}

// resultMsg carries the outcome of one line back to the model.
type resultMsg struct {
	output string
	code   int
	err    error
}

type model struct {
	ctx     context.Context
	session *Session
	input   textinput.Model
	spinner spinner.Model
	running bool

	// recall holds submitted lines; cursor indexes into it while browsing.
	recall []string
	cursor int
}

func newModel(ctx context.Context, s *Session) model {
	in := textinput.New()
	in.Prompt = style.Info(s.Prompt)
	in.Focus()

	return model{
		ctx:     ctx,
		session: s,
		input:   in,
		spinner: spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultMsg:
		m.running = false
		var printed tea.Cmd
		if text := renderResult(msg); text != "" {
			printed = tea.Println(text)
		}
		if _, exited := m.session.Exited(); exited {
			if printed == nil {
				return m, tea.Quit
			}
			return m, tea.Sequence(printed, tea.Quit)
		}
		return m, printed

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case m.running:
		return m, nil

	case key.Matches(msg, keys.Submit):
		line := m.input.Value()
		m.input.Reset()
		if strings.TrimSpace(line) != "" {
			m.recall = append(m.recall, line)
		}
		m.cursor = len(m.recall)
		m.running = true
		return m, tea.Batch(
			tea.Println(m.input.Prompt+line),
			m.run(line),
			m.spinner.Tick,
		)

	case key.Matches(msg, keys.Prev):
		if m.cursor > 0 {
			m.cursor--
			m.input.SetValue(m.recall[m.cursor])
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.Next):
		if m.cursor < len(m.recall) {
			m.cursor++
		}
		if m.cursor == len(m.recall) {
			m.input.Reset()
		} else {
			m.input.SetValue(m.recall[m.cursor])
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run executes line off the UI goroutine.
func (m model) run(line string) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		code, err := m.session.ExecuteTo(m.ctx, line, &buf)
		return resultMsg{output: buf.String(), code: code, err: err}
	}
}

func renderResult(r resultMsg) string {
	out := strings.TrimRight(r.output, "\n")
	if r.err == nil {
		return out
	}

	msg := r.err.Error()
	var ue *usage.Error
	if errors.As(r.err, &ue) {
		msg = ue.Full()
	}
	if out != "" {
		out += "\n"
	}
	return out + style.Error(msg)
}

func (m model) View() string {
	if m.running {
		return m.spinner.View() + " " + style.Muted("running")
	}
	return m.input.View()
}
