package console

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/defs"
	"github.com/footprint-tools/verbs/internal/usage"
)

const maxAliasDepth = 8

// ErrAliasDepth is returned when dispatch actions keep expanding into
// each other.
var ErrAliasDepth = errors.New("alias expansion too deep")

type aliasDepthKey struct{}

// LoadDefinitions registers the commands declared in a YAML file. A
// missing file is not an error when optional is set.
func (s *Session) LoadDefinitions(path string, optional bool) error {
	f, err := defs.Load(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return usage.InvalidDefinition(path, err)
	}

	specs, err := defs.Compile(f, s.definitionActions())
	if err != nil {
		return usage.InvalidDefinition(path, err)
	}

	if err := s.registry.RegisterAll(specs...); err != nil {
		return usage.InvalidDefinition(path, err)
	}

	s.logger.Info("console: loaded %d commands from %s", len(specs), path)
	return nil
}

// definitionActions are the actions a definitions file can name:
//
//	print     writes the rendered template, expanding $variables
//	dispatch  runs the rendered template as a command line
func (s *Session) definitionActions() defs.Actions {
	return defs.Actions{
		"print": func(_ context.Context, _ *arguments.Store, text string) (int, error) {
			_, err := s.printf("%s\n", s.vars.Expand(text))
			return 0, err
		},
		"dispatch": func(ctx context.Context, _ *arguments.Store, text string) (int, error) {
			depth, _ := ctx.Value(aliasDepthKey{}).(int)
			if depth >= maxAliasDepth {
				return 1, fmt.Errorf("%w: %q", ErrAliasDepth, text)
			}
			ctx = context.WithValue(ctx, aliasDepthKey{}, depth+1)

			_, code, err := s.dispatch(ctx, strings.TrimSpace(s.vars.Expand(text)))
			return code, err
		},
	}
}
