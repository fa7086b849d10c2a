package cli

import (
	"strings"

	"github.com/footprint-tools/verbs/internal/arguments"
)

// JoinArgs rebuilds a command line from shell words. Words that would not
// survive re-splitting, i.e. empty ones or ones holding whitespace or a
// double quote, are quoted.
func JoinArgs(words []string) string {
	parts := make([]string, len(words))
	for i, w := range words {
		if needsQuoting(w) {
			parts[i] = arguments.Quote(w)
		} else {
			parts[i] = w
		}
	}
	return strings.Join(parts, " ")
}

func needsQuoting(w string) bool {
	return w == "" || strings.ContainsAny(w, " \t\n\"")
}
