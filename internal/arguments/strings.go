package arguments

import (
	"strings"

	"github.com/footprint-tools/verbs/internal/cursor"
)

type quotedParser struct{}

// String parses a double-quoted string. A backslash escapes the next rune,
// which is kept verbatim: `\"` yields `"` and `\\` yields `\`.
func String() Parser { return quotedParser{} }

func (quotedParser) Identifier() string { return "string" }

func (quotedParser) Parse(c *cursor.Cursor) (Value, error) {
	s, err := parseQuoted(c)
	if err != nil {
		return Value{}, err
	}
	return StringValue(s), nil
}

func parseQuoted(c *cursor.Cursor) (string, error) {
	if err := c.Literal(`"`); err != nil {
		return "", err
	}

	var b strings.Builder
	escaped := false
	for {
		r, ok := c.Next()
		if !ok {
			return "", c.Error(cursor.UnexpectedEOF)
		}

		switch {
		case escaped:
			b.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			return b.String(), nil
		default:
			b.WriteRune(r)
		}
	}
}

// Quote renders s so that String parses it back to s.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

type wordParser struct{}

// Word parses a bare token running up to the next whitespace.
func Word() Parser { return wordParser{} }

func (wordParser) Identifier() string { return "word" }

func (wordParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	w := scanWord(c)
	if w == "" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	return StringValue(w), nil
}

type textParser struct{}

// Text accepts either a quoted string or a bare word. Input starting with
// '"' is always treated as quoted.
func Text() Parser { return textParser{} }

func (textParser) Identifier() string { return "text" }

func (textParser) Parse(c *cursor.Cursor) (Value, error) {
	if r, ok := c.Peek(); ok && r == '"' {
		return String().Parse(c)
	}
	return Word().Parse(c)
}

type restParser struct{}

// Rest consumes everything up to the end of the line, trailing spaces
// trimmed. It fails only when nothing is left.
func Rest() Parser { return restParser{} }

func (restParser) Identifier() string { return "rest" }

func (restParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	text := strings.TrimRight(c.Rest(), " \t")
	if text == "" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	c.Advance(len(text))
	return StringValue(text), nil
}
