package config

import (
	"context"
	"fmt"

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
}

// DefaultDeps edits ~/.verbsrc and prints to stdout.
func DefaultDeps() Deps {
	return Deps{
		Config:  config.NewProvider(),
		Styler:  style.NewStyler(),
		Printf:  fmt.Printf,
		Println: fmt.Println,
	}
}

// ForApp takes the provider, styler and output of an application.
func ForApp(app *domain.Application) Deps {
	return Deps{
		Config:  app.Config,
		Styler:  app.Styler,
		Printf:  app.Output.Printf,
		Println: app.Output.Println,
	}
}

type action func(context.Context, *arguments.Store, Deps) error

func (a action) with(deps Deps) func(context.Context, *arguments.Store) error {
	return func(ctx context.Context, args *arguments.Store) error {
		return a(ctx, args, deps)
	}
}
