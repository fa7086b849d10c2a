package config

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/usage"
)

// Set writes <key>=<value> to the rc file.
func Set(deps Deps) func(context.Context, *arguments.Store) error {
	return action(set).with(deps)
}

func set(_ context.Context, args *arguments.Store, deps Deps) error {
	key, err := args.String("key")
	if err != nil {
		return usage.MissingArgument("key")
	}
	value, err := args.String("value")
	if err != nil {
		return usage.MissingArgument("value")
	}
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	updated, err := deps.Config.Set(key, value)
	if err != nil {
		return usage.FailedConfigPath(err)
	}

	verb := "added"
	if updated {
		verb = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", verb, key, value)
	return nil
}
