package history

import (
	"context"
	"fmt"

	"github.com/footprint-tools/verbs/internal/arguments"
)

// Clear returns a handler deleting every history entry.
func Clear(deps Deps) func(context.Context, *arguments.Store) error {
	return func(ctx context.Context, args *arguments.Store) error {
		return clearHistory(ctx, args, deps)
	}
}

func clearHistory(_ context.Context, _ *arguments.Store, deps Deps) error {
	if deps.Store == nil {
		return ErrDisabled
	}

	n, err := deps.Store.Clear()
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	_, _ = deps.Printf("removed %d entries\n", n)
	return nil
}
