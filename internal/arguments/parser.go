package arguments

import "github.com/footprint-tools/verbs/internal/cursor"

// Parser is implemented by every argument type.
//
// Parse consumes exactly one token from c and returns its value. On success
// the cursor sits just past the token. On failure the cursor position is
// unspecified, so callers only ever hand a parser a branched cursor.
type Parser interface {
	Parse(c *cursor.Cursor) (Value, error)

	// Identifier names the type in usage strings, e.g. "u32" or "string".
	Identifier() string
}

type funcParser struct {
	identifier string
	fn         func(*cursor.Cursor) (Value, error)
}

// Func adapts a function to the Parser contract.
func Func(identifier string, fn func(*cursor.Cursor) (Value, error)) Parser {
	return &funcParser{identifier: identifier, fn: fn}
}

func (p *funcParser) Parse(c *cursor.Cursor) (Value, error) { return p.fn(c) }
func (p *funcParser) Identifier() string                    { return p.identifier }

type unitParser struct{}

// Unit is the argument type that matches nothing and always succeeds.
func Unit() Parser { return unitParser{} }

func (unitParser) Parse(*cursor.Cursor) (Value, error) { return UnitValue(), nil }
func (unitParser) Identifier() string                  { return "unit" }

// scanWord consumes the run of non-space runes at c.
func scanWord(c *cursor.Cursor) string {
	return c.ScanWhile(func(r rune) bool { return !cursor.IsSpace(r) })
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsUnit reports whether p is the Unit parser.
func IsUnit(p Parser) bool {
	_, ok := p.(unitParser)
	return ok
}
