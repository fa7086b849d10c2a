package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ScriptError reports the line a script stopped at.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// RunScript executes r one line at a time. It stops at the first line that
// fails or exits non-zero, and at an exit command, returning that exit
// code.
func (s *Session) RunScript(ctx context.Context, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0

	for scanner.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return 1, &ScriptError{Line: n, Err: err}
		}

		code, err := s.Execute(ctx, scanner.Text())
		if err != nil {
			return code, &ScriptError{Line: n, Err: err}
		}
		if exitCode, exited := s.Exited(); exited {
			return exitCode, nil
		}
		if code != 0 {
			return code, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return 1, fmt.Errorf("read script: %w", err)
	}
	return 0, nil
}
