package config

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/domain"
)

// List prints every visible key and its resolved value.
func List(deps Deps) func(context.Context, *arguments.Store) error {
	return action(list).with(deps)
}

// list prints every visible key grouped by section. Keys marked
// HideIfEmpty only appear once they have a value.
func list(_ context.Context, _ *arguments.Store, deps Deps) error {
	configMap, err := deps.Config.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	first := true
	for _, section := range domain.ConfigSections() {
		var lines []string
		for _, key := range bySection[section] {
			value := configMap[key.Name]
			if key.HideIfEmpty && value == "" {
				continue
			}
			lines = append(lines, key.Name+"="+value)
		}
		if len(lines) == 0 {
			continue
		}

		if !first {
			_, _ = deps.Println()
		}
		first = false

		_, _ = deps.Println(deps.Styler.Header("# " + section))
		for _, line := range lines {
			_, _ = deps.Println(line)
		}
	}

	return nil
}
