package config

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/usage"
)

// Unset removes <key> from the rc file.
func Unset(deps Deps) func(context.Context, *arguments.Store) error {
	return action(unset).with(deps)
}

func unset(_ context.Context, args *arguments.Store, deps Deps) error {
	key, err := args.String("key")
	if err != nil {
		return usage.MissingArgument("key")
	}

	removed, err := deps.Config.Unset(key)
	if err != nil {
		return usage.FailedConfigPath(err)
	}
	if !removed {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Printf("unset %s\n", key)
	return nil
}
