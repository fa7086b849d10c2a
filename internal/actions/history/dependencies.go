package history

import (
	"fmt"
	"strconv"

	"github.com/footprint-tools/verbs/internal/config"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/format"
	"github.com/footprint-tools/verbs/internal/ui"
	"github.com/footprint-tools/verbs/internal/ui/style"
)

type Deps struct {
	// Store is nil when history is disabled.
	Store domain.HistoryStore

	// Session restricts listings to one console session when set.
	Session string

	Styler       domain.Styler
	DefaultLimit func() int
	Layout       func() format.Layout
	Output       func(string)
	Printf       func(string, ...any) (int, error)
}

// DefaultDeps lists every session through the pager.
func DefaultDeps(store domain.HistoryStore) Deps {
	return Deps{
		Store:        store,
		Styler:       style.NewStyler(),
		DefaultLimit: configuredLimit,
		Layout:       format.Current,
		Output:       ui.Pager,
		Printf:       fmt.Printf,
	}
}

func configuredLimit() int {
	v, _ := config.Get("history_limit")
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 20
	}
	return n
}

// ForApp lists through the application's store, styler and output.
func ForApp(app *domain.Application) Deps {
	deps := DefaultDeps(app.History)
	deps.Styler = app.Styler
	deps.Output = app.Output.Pager
	deps.Printf = app.Output.Printf
	return deps
}
