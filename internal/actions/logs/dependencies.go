package logs

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/paths"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

type Deps struct {
	LogFilePath func() string
	Styler      domain.Styler
	Printf      func(string, ...any) (int, error)
	Println     func(...any) (int, error)
	ReadFile    func(string) ([]byte, error)
	WriteFile   func(string, []byte, os.FileMode) error
	Stat        func(string) (os.FileInfo, error)
	OpenFile    func(string, int, os.FileMode) (*os.File, error)

	// PollInterval is how often tail checks for new lines.
	PollInterval time.Duration
}

func DefaultDeps() Deps {
	return Deps{
		LogFilePath:  paths.LogFilePath,
		Styler:       style.NewStyler(),
		Printf:       fmt.Printf,
		Println:      fmt.Println,
		ReadFile:     os.ReadFile,
		WriteFile:    os.WriteFile,
		Stat:         os.Stat,
		OpenFile:     os.OpenFile,
		PollInterval: 500 * time.Millisecond,
	}
}

// ForApp prints through the application's output and styler.
func ForApp(app *domain.Application) Deps {
	deps := DefaultDeps()
	deps.Styler = app.Styler
	deps.Printf = app.Output.Printf
	deps.Println = app.Output.Println
	return deps
}

func bind(fn func(context.Context, *arguments.Store, Deps) error, deps Deps) func(context.Context, *arguments.Store) error {
	return func(ctx context.Context, args *arguments.Store) error {
		return fn(ctx, args, deps)
	}
}
