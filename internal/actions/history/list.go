package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/format"
)

// ErrDisabled is returned when history_enabled is false.
var ErrDisabled = errors.New("history is disabled (history_enabled=false)")

// List returns a handler printing recent history. It reads the optional
// limit and command arguments.
func List(deps Deps) func(context.Context, *arguments.Store) error {
	return func(ctx context.Context, args *arguments.Store) error {
		return list(ctx, args, deps)
	}
}

func list(_ context.Context, args *arguments.Store, deps Deps) error {
	if deps.Store == nil {
		return ErrDisabled
	}

	limit := deps.DefaultLimit()
	if n, err := args.Uint("limit"); err == nil {
		limit = int(n)
	}

	entries, err := deps.Store.List(domain.HistoryFilter{
		Session: deps.Session,
		Command: args.StringOr("command", ""),
		Limit:   limit,
	})
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		_, _ = deps.Printf("%s\n", deps.Styler.Muted("no history yet"))
		return nil
	}

	deps.Output(render(entries, deps.Layout(), deps.Styler))
	return nil
}

func render(entries []domain.HistoryEntry, layout format.Layout, st domain.Styler) string {
	width := len(fmt.Sprint(entries[len(entries)-1].ID))

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%*d  %s  %s", width, e.ID, st.Muted(layout.DateTimeShort(e.CreatedAt.Local())), e.Line)
		if e.Failed() {
			b.WriteString("  " + st.Error(fmt.Sprintf("[exit %d]", e.ExitCode)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
