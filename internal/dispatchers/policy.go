package dispatchers

import (
	"errors"

	"github.com/footprint-tools/verbs/internal/cursor"
)

// ErrorPolicy decides which failure is reported when every alternative of a
// command fails.
type ErrorPolicy int

const (
	// PolicyFurthest reports the failure that got furthest into the line.
	// Ties go to the alternative tried last.
	PolicyFurthest ErrorPolicy = iota

	// PolicyLastAttempted reports the failure of the alternative tried last.
	PolicyLastAttempted
)

func (p ErrorPolicy) String() string {
	if p == PolicyLastAttempted {
		return "last"
	}
	return "furthest"
}

// ParseErrorPolicy maps a config value to a policy. Unknown values select
// PolicyFurthest.
func ParseErrorPolicy(s string) ErrorPolicy {
	if s == "last" {
		return PolicyLastAttempted
	}
	return PolicyFurthest
}

// pick returns whichever of current and next the policy prefers. next is
// always the more recently attempted alternative.
func (p ErrorPolicy) pick(current, next error) error {
	if current == nil || p == PolicyLastAttempted {
		return next
	}
	if errorOffset(next) >= errorOffset(current) {
		return next
	}
	return current
}

// errorOffset returns how far into the line err was raised.
func errorOffset(err error) int {
	var me *MatchError
	if errors.As(err, &me) {
		return me.Offset
	}
	var pe *cursor.ParseError
	if errors.As(err, &pe) {
		return pe.Offset
	}
	return -1
}
