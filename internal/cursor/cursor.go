// Package cursor provides a position-tracking reader over a single command
// line. Every consumer of the grammar (argument parsers, forms, the
// dispatchers) works through a Cursor and reports failures as *ParseError
// values anchored at a byte offset into the line.
package cursor

import (
	"strings"
	"unicode/utf8"
)

// Cursor is a read position into an immutable source line.
//
// The offset always lies on a rune boundary and never exceeds len(source).
// A Cursor is a small value: Branch copies it so alternatives can be tried
// without disturbing the original position.
type Cursor struct {
	source string
	offset int
}

// New returns a cursor positioned at the start of source.
func New(source string) *Cursor {
	return &Cursor{source: source}
}

// Source returns the full line the cursor reads from.
func (c *Cursor) Source() string {
	return c.source
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Rest returns the unconsumed remainder of the line.
func (c *Cursor) Rest() string {
	return c.source[c.offset:]
}

// AtEnd reports whether the whole line has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.offset >= len(c.source)
}

// Peek returns the next rune without consuming it.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.offset:])
	return r, true
}

// Next consumes and returns the next rune.
func (c *Cursor) Next() (rune, bool) {
	if c.AtEnd() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.source[c.offset:])
	c.offset += size
	return r, true
}

// Literal consumes text if the remainder starts with it exactly.
// On mismatch the cursor does not move and a BadLiteral error is returned.
func (c *Cursor) Literal(text string) error {
	if !strings.HasPrefix(c.Rest(), text) {
		err := c.Error(BadLiteral)
		err.Expected = text
		return err
	}
	c.offset += len(text)
	return nil
}

// ScanWhile consumes the longest prefix whose runes all satisfy pred and
// returns it. It never fails; an empty string means nothing matched.
func (c *Cursor) ScanWhile(pred func(rune) bool) string {
	start := c.offset
	for c.offset < len(c.source) {
		r, size := utf8.DecodeRuneInString(c.source[c.offset:])
		if !pred(r) {
			break
		}
		c.offset += size
	}
	return c.source[start:c.offset]
}

// Advance moves the cursor forward by n bytes, clamped to the end of the
// line. Callers pass lengths of text they have already inspected.
func (c *Cursor) Advance(n int) {
	if n <= 0 {
		return
	}
	c.offset = min(c.offset+n, len(c.source))
}

// SkipSpace consumes spaces and tabs and returns how many bytes were skipped.
func (c *Cursor) SkipSpace() int {
	return len(c.ScanWhile(IsSpace))
}

// End succeeds only when the whole line has been consumed.
func (c *Cursor) End() error {
	if !c.AtEnd() {
		return c.Error(ExpectedEOF)
	}
	return nil
}

// Branch returns an independent cursor at the same position.
func (c *Cursor) Branch() *Cursor {
	b := *c
	return &b
}

// Reset rewinds (or forwards) the cursor to a previously observed offset.
func (c *Cursor) Reset(offset int) {
	c.offset = max(0, min(offset, len(c.source)))
}

// Error builds a ParseError of the given kind at the current offset.
func (c *Cursor) Error(kind Kind) *ParseError {
	return c.ErrorAt(c.offset, kind)
}

// ErrorAt builds a ParseError of the given kind at offset.
func (c *Cursor) ErrorAt(offset int, kind Kind) *ParseError {
	return &ParseError{
		Source: c.source,
		Offset: offset,
		Kind:   kind,
		Token:  tokenAt(c.source, offset),
	}
}

// IsSpace reports whether r separates tokens on a command line.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func tokenAt(source string, offset int) string {
	if offset >= len(source) {
		return ""
	}
	rest := source[offset:]
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		rest = rest[:i]
	}
	return strings.Clone(rest)
}
