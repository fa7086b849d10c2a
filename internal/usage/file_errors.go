package usage

import "fmt"

// InvalidDefinition is returned when a command definitions file cannot be
// loaded or compiled.
func InvalidDefinition(path string, err error) *Error {
	return &Error{
		Kind:    ErrInvalidDefinition,
		Message: fmt.Sprintf("%s: %s: %v", Program, path, err),
		Err:     err,
	}
}

// ScriptNotFound is returned when `run` is given a file that does not exist.
func ScriptNotFound(path string) *Error {
	return &Error{
		Kind:    ErrScriptNotFound,
		Message: fmt.Sprintf("%s: script '%s' not found", Program, path),
	}
}
