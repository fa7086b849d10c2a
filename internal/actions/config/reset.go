package config

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/usage"
)

// Reset replaces the rc file with the commented defaults.
func Reset(deps Deps) func(context.Context, *arguments.Store) error {
	return action(reset).with(deps)
}

func reset(_ context.Context, _ *arguments.Store, deps Deps) error {
	path, err := deps.Config.Reset()
	if err != nil {
		return usage.FailedConfigPath(err)
	}
	_, _ = deps.Printf("config reset to defaults (%s)\n", path)
	return nil
}
