package cli

import "strings"

// ParsedFlags gives typed access to the global flags SplitArgs extracted.
type ParsedFlags struct {
	raw []string
}

// NewParsedFlags wraps normalised flag strings.
func NewParsedFlags(flags []string) *ParsedFlags {
	return &ParsedFlags{raw: flags}
}

// Raw returns the underlying flag strings.
func (f *ParsedFlags) Raw() []string {
	return f.raw
}

// Has reports whether a boolean flag is present.
func (f *ParsedFlags) Has(name string) bool {
	for _, flag := range f.raw {
		if flag == name {
			return true
		}
	}
	return false
}

// String returns the value of a --flag=value flag, or defaultVal if absent.
// The first occurrence wins.
func (f *ParsedFlags) String(name, defaultVal string) string {
	prefix := name + "="
	for _, flag := range f.raw {
		if value, ok := strings.CutPrefix(flag, prefix); ok {
			return value
		}
	}
	return defaultVal
}
