package theme

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

var errNotInteractive = errors.New("theme picker requires an interactive terminal")

// Pick chooses a theme in a full-screen picker.
func Pick(deps Deps) func(context.Context, *arguments.Store) error {
	return With(deps, pick)
}

func pick(_ context.Context, _ *arguments.Store, deps Deps) error {
	if !deps.Interactive() {
		return errNotInteractive
	}

	active := current(deps)
	final, err := deps.RunPicker(newModel(deps.ThemeNames, deps.Themes, active))
	if err != nil {
		return err
	}

	fm := final.(model)
	switch {
	case fm.cancelled:
		_, _ = deps.Println("Cancelled")
		return nil
	case fm.chosen == "":
		return nil
	case fm.chosen == active:
		_, _ = deps.Printf("Theme %s is already active\n", deps.Styler.Info(fm.chosen))
		return nil
	}

	if err := save(deps, fm.chosen); err != nil {
		return err
	}
	_, _ = deps.Printf("Theme set to %s\n", deps.Styler.Success(fm.chosen))
	return nil
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	First  key.Binding
	Last   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("q", "cancel")),
}

type model struct {
	themes    []string
	configs   map[string]style.ColorConfig
	cursor    int
	selected  string
	chosen    string
	cancelled bool
}

// newModel starts the cursor on the active theme.
func newModel(themes []string, configs map[string]style.ColorConfig, active string) model {
	m := model{themes: themes, configs: configs, selected: active}
	for i, name := range themes {
		if name == active {
			m.cursor = i
			break
		}
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(m.themes) == 0 {
		return m, nil
	}

	last := len(m.themes) - 1
	switch {
	case key.Matches(km, keys.Cancel):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(km, keys.Choose):
		m.chosen = m.themes[m.cursor]
		return m, tea.Quit
	case key.Matches(km, keys.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = last
		}
	case key.Matches(km, keys.Down):
		m.cursor++
		if m.cursor > last {
			m.cursor = 0
		}
	case key.Matches(km, keys.First):
		m.cursor = 0
	case key.Matches(km, keys.Last):
		m.cursor = last
	}
	return m, nil
}

func (m model) View() string {
	if len(m.themes) == 0 {
		return "no themes\n"
	}

	left := make([]string, len(m.themes))
	for i, name := range m.themes {
		pointer := "   "
		if i == m.cursor {
			pointer = " → "
		}
		mark := "  "
		if name == m.selected {
			mark = "✓ "
		}

		nameStyle := lipgloss.NewStyle().Width(16)
		if i == m.cursor {
			nameStyle = nameStyle.Bold(true).Background(lipgloss.Color("237"))
		}
		left[i] = pointer + mark + nameStyle.Render(name)
	}

	name := m.themes[m.cursor]
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(strings.Join(previewLines(name, m.configs[name]), "\n"))

	var b strings.Builder
	b.WriteString("Select a theme:\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(left, "\n"), "    ", card))
	b.WriteString("\n\n")
	b.WriteString(renderFooter())
	return b.String()
}

func renderFooter() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 1)
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Render(" │ ")
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{keys.Up, keys.First, keys.Choose, keys.Cancel} {
		h := b.Help()
		parts = append(parts, keyStyle.Render(h.Key)+label.Render(" "+h.Desc))
	}
	return strings.Join(parts, sep)
}

// previewLines shows a short console exchange in the theme's colors.
func previewLines(name string, cfg style.ColorConfig) []string {
	return []string{
		colorize("Preview: ", cfg.Muted) + colorize(name, cfg.Header),
		"",
		colorize("> ", cfg.Info) + "add 1.5 to total",
		"total = 4.5",
		colorize("> ", cfg.Info) + "history clear",
		colorize("removed 12 entries", cfg.Success),
		colorize("> ", cfg.Info) + "scale x by 2",
		colorize("verbs: invalid argument \"x\" at column 7", cfg.Error),
		colorize("variable total is not set", cfg.Warning),
		colorize("   3  2024-03-05 09:30  echo hi", cfg.Muted),
	}
}
