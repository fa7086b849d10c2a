package theme

import (
	"context"
	"fmt"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

// Set saves <name> as the theme.
func Set(deps Deps) func(context.Context, *arguments.Store) error {
	return With(deps, setTheme)
}

// setTheme accepts a full variant name or a base name, which then follows
// the terminal background.
func setTheme(_ context.Context, args *arguments.Store, deps Deps) error {
	name, err := args.String("name")
	if err != nil {
		return err
	}

	if _, ok := deps.Themes[style.ResolveThemeName(name)]; !ok {
		_, _ = deps.Println("available themes:")
		for _, n := range deps.ThemeNames {
			_, _ = deps.Printf("  %s\n", n)
		}
		return fmt.Errorf("unknown theme: %s", name)
	}

	if err := save(deps, name); err != nil {
		return err
	}

	_, _ = deps.Printf("theme set to %s\n", deps.Styler.Success(name))
	return nil
}
