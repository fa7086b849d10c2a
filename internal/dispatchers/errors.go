package dispatchers

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/verbs/internal/cursor"
)

// MatchKind classifies a command tree matching failure.
type MatchKind int

const (
	// EndOfInput means the line ended at a node that has no handler.
	EndOfInput MatchKind = iota
	// InvalidInput means no child of a node accepted the remaining input.
	InvalidInput
)

func (k MatchKind) String() string {
	if k == EndOfInput {
		return "incomplete command"
	}
	return "invalid input"
}

// MatchError is returned by the command tree when a line cannot be routed
// to a handler.
type MatchError struct {
	Kind      MatchKind
	Source    string
	Offset    int
	Remainder string

	// Cause is the most relevant failure among the children that were tried.
	Cause error
}

func (e *MatchError) Error() string {
	if e.Kind == EndOfInput {
		return fmt.Sprintf("incomplete command %q", e.Source)
	}
	return fmt.Sprintf("invalid input %q", e.Remainder)
}

func (e *MatchError) Unwrap() error {
	return e.Cause
}

// Snippet renders the line with a caret under the failure point.
func (e *MatchError) Snippet() string {
	return cursor.Snippet(e.Source, e.Offset, e.Kind.String())
}

// DispatchError wraps a failure reported by a handler. The engine never
// retries a command once its handler ran.
type DispatchError struct {
	Command string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by the line itself rather
// than by a handler.
func IsInputError(err error) bool {
	var pe *cursor.ParseError
	var me *MatchError
	var de *DispatchError
	if errors.As(err, &de) {
		return false
	}
	return errors.As(err, &pe) || errors.As(err, &me)
}

var (
	_ error = (*MatchError)(nil)
	_ error = (*DispatchError)(nil)
)
