package theme

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

// List prints every theme variant with a color preview.
func List(deps Deps) func(context.Context, *arguments.Store) error {
	return With(deps, list)
}

func list(_ context.Context, _ *arguments.Store, deps Deps) error {
	active := current(deps)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, name := range deps.ThemeNames {
		marker := "  "
		if name == active {
			marker = deps.Styler.Success("* ")
		}
		_, _ = deps.Printf("%s%-16s  %s\n", marker, name, renderColorPreview(deps.Themes[name]))
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'verbs theme set <name>' or 'verbs theme pick' to change")
	return nil
}

// colorize renders text in color c, where "bold" means no color but bold.
func colorize(text, c string) string {
	switch c {
	case "":
		return text
	case "bold":
		return lipgloss.NewStyle().Bold(true).Render(text)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(text)
}

// renderColorPreview returns colored samples of a theme's roles.
func renderColorPreview(cfg style.ColorConfig) string {
	return colorize("success ", cfg.Success) +
		colorize("warning ", cfg.Warning) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("header", cfg.Header)
}
