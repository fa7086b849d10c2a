package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when the first word of a line names no command.
// Suggestions, when present, are listed below the message.
func UnknownCommand(command string, suggestions ...string) *Error {
	e := &Error{
		Kind:    ErrUnknownCommand,
		Message: fmt.Sprintf("%s: '%s' is not a %s command. See '%s help'.", Program, command, Program, Program),
	}
	if len(suggestions) > 0 {
		var b strings.Builder
		if len(suggestions) == 1 {
			b.WriteString("\nThe most similar command is")
		} else {
			b.WriteString("\nThe most similar commands are")
		}
		for _, s := range suggestions {
			b.WriteString("\n\t")
			b.WriteString(s)
		}
		e.Detail = b.String()
	}
	return e
}
