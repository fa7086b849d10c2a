package config

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
	"github.com/footprint-tools/verbs/internal/usage"
)

// Get prints the resolved value of <key>.
func Get(deps Deps) func(context.Context, *arguments.Store) error {
	return action(get).with(deps)
}

func get(_ context.Context, args *arguments.Store, deps Deps) error {
	key, err := args.String("key")
	if err != nil {
		return usage.MissingArgument("key")
	}
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, found := deps.Config.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
