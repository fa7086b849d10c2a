package cursor

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind classifies a parse failure.
type Kind int

const (
	UnknownCommand Kind = iota
	BadLiteral
	BadArgument
	UnexpectedEOF
	ExpectedEOF
	ExpectedWhitespace
)

func (k Kind) String() string {
	switch k {
	case UnknownCommand:
		return "unknown command"
	case BadLiteral:
		return "unexpected text"
	case BadArgument:
		return "invalid argument"
	case UnexpectedEOF:
		return "unexpected end of input"
	case ExpectedEOF:
		return "unexpected trailing input"
	case ExpectedWhitespace:
		return "expected whitespace"
	default:
		return "parse error"
	}
}

// ParseError describes where and why a line failed to parse.
//
// A ParseError is a self-contained snapshot: it keeps its own copy of the
// offending line so it can be rendered after the caller has moved on.
type ParseError struct {
	Source string
	Offset int
	Kind   Kind

	// Token is the whitespace-delimited word starting at Offset, if any.
	Token string

	// Expected is the literal that was required, for BadLiteral errors.
	Expected string

	// Suggestions lists close matches, for UnknownCommand errors.
	Suggestions []string

	// Err is the underlying cause, e.g. a strconv range error.
	Err error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnknownCommand:
		return fmt.Sprintf("unknown command %q", e.Token)
	case BadLiteral:
		if e.Expected != "" {
			return fmt.Sprintf("expected %q at column %d", e.Expected, e.Column())
		}
	case BadArgument:
		if e.Err != nil {
			return fmt.Sprintf("invalid argument %q at column %d: %v", e.Token, e.Column(), e.Err)
		}
		if e.Token != "" {
			return fmt.Sprintf("invalid argument %q at column %d", e.Token, e.Column())
		}
	}
	return fmt.Sprintf("%s at column %d", e.Kind, e.Column())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Column returns the 1-based rune column of Offset.
func (e *ParseError) Column() int {
	end := min(e.Offset, len(e.Source))
	return utf8.RuneCountInString(e.Source[:end]) + 1
}

// Remainder returns the unconsumed input from Offset onwards.
func (e *ParseError) Remainder() string {
	if e.Offset >= len(e.Source) {
		return ""
	}
	return e.Source[e.Offset:]
}

// snippetWidth bounds how much of a long line is shown around the caret.
const snippetWidth = 60

// Snippet renders the failing line with a caret under the failure point:
//
//	| add 1 x
//	|       ^ invalid argument
func (e *ParseError) Snippet() string {
	return Snippet(e.Source, e.Offset, e.Kind.String())
}

// Snippet renders source with a caret under offset followed by label. Long
// lines are windowed around the caret.
func Snippet(source string, offset int, label string) string {
	offset = max(0, min(offset, len(source)))
	line := []rune(source)
	col := utf8.RuneCountInString(source[:offset])

	start := 0
	prefix, suffix := "", ""
	if len(line) > snippetWidth {
		start = max(0, col-snippetWidth/2)
		end := min(len(line), start+snippetWidth)
		start = max(0, end-snippetWidth)
		if start > 0 {
			prefix = "..."
		}
		if end < len(line) {
			suffix = "..."
		}
		line = line[start:end]
	}

	var b strings.Builder
	b.WriteString("  | ")
	b.WriteString(prefix)
	b.WriteString(string(line))
	b.WriteString(suffix)
	b.WriteString("\n  | ")
	b.WriteString(strings.Repeat(" ", len(prefix)+col-start))
	b.WriteString("^ ")
	b.WriteString(label)
	return b.String()
}

// KindOf extracts the Kind of a ParseError anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

var _ error = (*ParseError)(nil)
