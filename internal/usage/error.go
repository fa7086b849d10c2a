package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidFlag
	ErrMissingArgument
	ErrUnknownCommand
	ErrInvalidInput
	ErrIncompleteCommand
	ErrCommandFailed
	ErrInvalidConfigKey
	ErrFailedConfigPath
	ErrInvalidDefinition
	ErrScriptNotFound
)

// Program prefixes every message.
const Program = "verbs"

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Command failed
//	  - Invalid config key
//	  - Failed config path
//	  - Invalid definition file
//	  - Script not found
//
//	Exit 2: User input errors
//	  - Invalid flag
//	  - Missing argument
//	  - Invalid input
//	  - Incomplete command
var exitCodes = map[ErrorKind]int{
	ErrUnknown:           1,
	ErrInvalidFlag:       2,
	ErrMissingArgument:   2,
	ErrUnknownCommand:    1,
	ErrInvalidInput:      2,
	ErrIncompleteCommand: 2,
	ErrCommandFailed:     1,
	ErrInvalidConfigKey:  1,
	ErrFailedConfigPath:  1,
	ErrInvalidDefinition: 1,
	ErrScriptNotFound:    1,
}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero

	// Detail is printed below Message, e.g. a caret snippet or suggestions.
	Detail string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Full returns the message followed by its detail, if any.
func (e *Error) Full() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Detail
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
