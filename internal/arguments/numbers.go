package arguments

import (
	"fmt"
	"strconv"

	"github.com/footprint-tools/verbs/internal/cursor"
)

type intParser struct{ bits int }

// Int parses a signed decimal integer of the given width.
// A leading '-' is always consumed, so "-" alone is an invalid argument.
func Int(bits int) Parser {
	checkBits(bits, 8, 16, 32, 64)
	return intParser{bits: bits}
}

func (p intParser) Identifier() string { return fmt.Sprintf("i%d", p.bits) }

func (p intParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	text := scanSigned(c)
	if text == "" || text == "-" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	n, err := strconv.ParseInt(text, 10, p.bits)
	if err != nil {
		return Value{}, argumentError(c, start, err)
	}
	return IntValue(n), nil
}

type uintParser struct{ bits int }

// Uint parses an unsigned decimal integer of the given width.
func Uint(bits int) Parser {
	checkBits(bits, 8, 16, 32, 64)
	return uintParser{bits: bits}
}

func (p uintParser) Identifier() string { return fmt.Sprintf("u%d", p.bits) }

func (p uintParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	text := c.ScanWhile(isDigit)
	if text == "" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	n, err := strconv.ParseUint(text, 10, p.bits)
	if err != nil {
		return Value{}, argumentError(c, start, err)
	}
	return UintValue(n), nil
}

type floatParser struct{ bits int }

// Float parses a decimal number with at most one '.'. A second '.' ends the
// token rather than failing it.
func Float(bits int) Parser {
	checkBits(bits, 32, 64)
	return floatParser{bits: bits}
}

func (p floatParser) Identifier() string { return fmt.Sprintf("f%d", p.bits) }

func (p floatParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	text := scanDecimal(c)
	if text == "" || text == "-" || text == "." || text == "-." {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	f, err := strconv.ParseFloat(text, p.bits)
	if err != nil {
		return Value{}, argumentError(c, start, err)
	}
	return FloatValue(f), nil
}

// scanSigned consumes an optional '-' followed by digits.
func scanSigned(c *cursor.Cursor) string {
	start := c.Offset()
	if r, ok := c.Peek(); ok && r == '-' {
		c.Advance(1)
	}
	c.ScanWhile(isDigit)
	return c.Source()[start:c.Offset()]
}

// scanDecimal consumes an optional '-', then digits with at most one '.'.
func scanDecimal(c *cursor.Cursor) string {
	start := c.Offset()
	if r, ok := c.Peek(); ok && r == '-' {
		c.Advance(1)
	}
	seenDot := false
	c.ScanWhile(func(r rune) bool {
		if r == '.' {
			if seenDot {
				return false
			}
			seenDot = true
			return true
		}
		return isDigit(r)
	})
	return c.Source()[start:c.Offset()]
}

func argumentError(c *cursor.Cursor, start int, cause error) *cursor.ParseError {
	err := c.ErrorAt(start, cursor.BadArgument)
	if ne, ok := cause.(*strconv.NumError); ok {
		cause = ne.Err
	}
	err.Err = cause
	return err
}

func checkBits(bits int, allowed ...int) {
	for _, a := range allowed {
		if bits == a {
			return
		}
	}
	panic(fmt.Sprintf("arguments: unsupported width %d", bits))
}
