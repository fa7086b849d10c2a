package theme

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/config"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

type Deps struct {
	Config  domain.ConfigProvider
	Styler  domain.Styler
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)

	// Interactive reports whether the picker can take over the terminal.
	Interactive func() bool
	// RunPicker runs the picker program and returns its final state.
	RunPicker func(tea.Model) (tea.Model, error)

	ThemeNames []string // every dark/light variant
	Themes     map[string]style.ColorConfig
}

func DefaultDeps() Deps {
	return Deps{
		Config:      config.NewProvider(),
		Styler:      style.NewStyler(),
		Printf:      fmt.Printf,
		Println:     fmt.Println,
		Interactive: isInteractive,
		RunPicker: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithAltScreen()).Run()
		},
		ThemeNames: style.ThemeNames,
		Themes:     style.Themes,
	}
}

// ForApp is DefaultDeps with the application's config, styler and output.
func ForApp(app *domain.Application) Deps {
	deps := DefaultDeps()
	deps.Config = app.Config
	deps.Styler = app.Styler
	deps.Printf = app.Output.Printf
	deps.Println = app.Output.Println
	return deps
}

// With binds an action to deps.
func With(deps Deps, fn func(context.Context, *arguments.Store, Deps) error) func(context.Context, *arguments.Store) error {
	return func(ctx context.Context, args *arguments.Store) error {
		return fn(ctx, args, deps)
	}
}

// Bubble Tea needs a real terminal on both ends.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// current returns the configured theme with its dark/light suffix.
func current(deps Deps) string {
	name, _ := deps.Config.Get("theme")
	if name == "" {
		name = "default"
	}
	return style.ResolveThemeName(name)
}

func save(deps Deps, name string) error {
	_, err := deps.Config.Set("theme", name)
	return err
}
