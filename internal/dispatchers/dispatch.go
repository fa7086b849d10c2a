package dispatchers

import (
	"context"
	"unicode"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/cursor"
	"github.com/footprint-tools/verbs/internal/forms"
)

const defaultSuggestionsCount = 3

// Resolution is a fully matched line, ready to execute.
type Resolution struct {
	Command string
	Form    int
	Handler forms.Handler
	Args    *arguments.Store
}

// Execute runs the resolved handler. Handler failures come back wrapped in
// a *DispatchError together with the handler's exit code.
func (res *Resolution) Execute(ctx context.Context) (int, error) {
	code, err := res.Handler.Handle(ctx, res.Args)
	if err != nil {
		return code, &DispatchError{Command: res.Command, Err: err}
	}
	return code, nil
}

// Resolve matches line against the registry without running anything.
//
// The command name is the leading run of letters. Each form of that command
// is tried on its own branch of the cursor, in registration order, and the
// first one that consumes the whole line wins. If none does, the error
// selected by the registry's policy is returned.
func (r *Registry) Resolve(line string) (*Resolution, error) {
	c := cursor.New(line)
	name := c.ScanWhile(unicode.IsLetter)

	cmd, ok := r.commands[name]
	if !ok {
		err := c.ErrorAt(0, cursor.UnknownCommand)
		if name != "" {
			err.Token = name
		}
		err.Suggestions = FindSimilarCommands(err.Token, r.Names(), defaultSuggestionsCount)
		return nil, err
	}

	var failure error
	for i, f := range cmd.spec.Forms {
		args, err := f.Match(c.Branch())
		if err != nil {
			failure = r.policy.pick(failure, err)
			continue
		}
		return &Resolution{Command: name, Form: i, Handler: f.Handler, Args: args}, nil
	}
	return nil, failure
}

// Dispatch resolves line and runs the matching handler. At most one handler
// runs per call, and only with a fully populated argument store.
//
// Input errors are returned as *cursor.ParseError. Handler errors are
// returned as *DispatchError alongside the handler's exit code.
func (r *Registry) Dispatch(ctx context.Context, line string) (int, error) {
	res, err := r.Resolve(line)
	if err != nil {
		return 0, err
	}
	return res.Execute(ctx)
}
