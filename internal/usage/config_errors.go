package usage

import "fmt"

// InvalidConfigKey is returned for keys that are not part of the
// configuration schema, or are not set.
func InvalidConfigKey(key string) *Error {
	return &Error{
		Kind:    ErrInvalidConfigKey,
		Message: fmt.Sprintf("%s: invalid config key '%s'. See '%s config list'.", Program, key, Program),
	}
}

// FailedConfigPath is returned when the config file location cannot be
// determined or read.
func FailedConfigPath(err error) *Error {
	return &Error{
		Kind:    ErrFailedConfigPath,
		Message: fmt.Sprintf("%s: could not access config file: %v", Program, err),
		Err:     err,
	}
}
