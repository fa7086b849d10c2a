package forms

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
)

// Handler runs a command once its arguments have been parsed. The returned
// integer is the command's exit code.
type Handler interface {
	Handle(ctx context.Context, args *arguments.Store) (int, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, args *arguments.Store) (int, error)

func (f HandlerFunc) Handle(ctx context.Context, args *arguments.Store) (int, error) {
	return f(ctx, args)
}

// Action adapts a function with no exit code of its own. It reports 0.
type Action func(ctx context.Context, args *arguments.Store) error

func (f Action) Handle(ctx context.Context, args *arguments.Store) (int, error) {
	return 0, f(ctx, args)
}
