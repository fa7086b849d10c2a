package builtins

import (
	"context"
	"time"

	"github.com/footprint-tools/verbs/internal/actions/history"
)

type Deps struct {
	Vars   *Vars
	Printf func(string, ...any) (int, error)
	Sleep  func(context.Context, time.Duration) error

	// Overview renders the command list; Describe renders one command.
	Overview func() string
	Describe func(name string) (string, bool)

	History history.Deps

	// Exit asks the host to stop after the current line.
	Exit func(code int)
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
