package actions

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
)

func ShowVersion(ctx context.Context, args *arguments.Store) error {
	return showVersion(ctx, args, defaultDeps())
}

// showVersion prints the version, and the Go runtime when asked for the
// verbose form.
func showVersion(_ context.Context, args *arguments.Store, deps actionDependencies) error {
	_, _ = deps.Printf("verbs version %v\n", deps.Version())
	if args.Has("verbose") {
		_, _ = deps.Printf("built with %s\n", deps.Runtime())
	}
	return nil
}
