package usage

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/verbs/internal/cursor"
	"github.com/footprint-tools/verbs/internal/dispatchers"
)

// FromError turns an error returned by a dispatcher into a usage error.
//
// commands is the set of known top-level names; it is used to suggest
// alternatives when a command tree rejects the very first word. Errors that
// already are *Error pass through unchanged.
func FromError(err error, commands ...string) *Error {
	if err == nil {
		return nil
	}

	var ue *Error
	if errors.As(err, &ue) {
		return ue
	}

	var de *dispatchers.DispatchError
	if errors.As(err, &de) {
		return &Error{
			Kind:    ErrCommandFailed,
			Message: fmt.Sprintf("%s: %s", Program, de.Error()),
			Err:     err,
		}
	}

	var me *dispatchers.MatchError
	if errors.As(err, &me) {
		return fromMatchError(me, commands)
	}

	var pe *cursor.ParseError
	if errors.As(err, &pe) {
		return fromParseError(pe)
	}

	return &Error{
		Kind:    ErrUnknown,
		Message: fmt.Sprintf("%s: %v", Program, err),
		Err:     err,
	}
}

func fromParseError(pe *cursor.ParseError) *Error {
	if pe.Kind == cursor.UnknownCommand {
		e := UnknownCommand(pe.Token, pe.Suggestions...)
		e.Err = pe
		return e
	}
	return &Error{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf("%s: %s", Program, pe.Error()),
		Detail:  pe.Snippet(),
		Err:     pe,
	}
}

func fromMatchError(me *dispatchers.MatchError, commands []string) *Error {
	if me.Kind == dispatchers.EndOfInput {
		return &Error{
			Kind:    ErrIncompleteCommand,
			Message: fmt.Sprintf("%s: %s", Program, me.Error()),
			Detail:  me.Snippet(),
			Err:     me,
		}
	}

	if me.Offset == leadingSpace(me.Source) && len(commands) > 0 {
		word := firstWord(me.Remainder)
		e := UnknownCommand(word, dispatchers.FindSimilarCommands(word, commands, 3)...)
		e.Err = me
		return e
	}

	detail := me.Snippet()
	var pe *cursor.ParseError
	if errors.As(me.Cause, &pe) && pe.Expected != "" {
		detail = cursor.Snippet(me.Source, me.Offset, fmt.Sprintf("expected %q", pe.Expected))
	}
	return &Error{
		Kind:    ErrInvalidInput,
		Message: fmt.Sprintf("%s: %s", Program, me.Error()),
		Detail:  detail,
		Err:     me,
	}
}

func leadingSpace(s string) int {
	c := cursor.New(s)
	return c.SkipSpace()
}

func firstWord(s string) string {
	c := cursor.New(s)
	return c.ScanWhile(func(r rune) bool { return !cursor.IsSpace(r) })
}
