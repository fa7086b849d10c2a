package arguments

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/footprint-tools/verbs/internal/cursor"
)

type boolParser struct{}

// Bool accepts true/false, yes/no and on/off, case-insensitively.
func Bool() Parser { return boolParser{} }

func (boolParser) Identifier() string { return "bool" }

func (boolParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	switch strings.ToLower(scanWord(c)) {
	case "true", "yes", "on":
		return BoolValue(true), nil
	case "false", "no", "off":
		return BoolValue(false), nil
	}
	return Value{}, c.ErrorAt(start, cursor.BadArgument)
}

type durationParser struct{}

// Duration parses a Go duration such as "1m30s".
func Duration() Parser { return durationParser{} }

func (durationParser) Identifier() string { return "duration" }

func (durationParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	w := scanWord(c)
	if w == "" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	d, err := time.ParseDuration(w)
	if err != nil {
		perr := c.ErrorAt(start, cursor.BadArgument)
		perr.Err = err
		return Value{}, perr
	}
	return DurationValue(d), nil
}

type enumParser struct{ choices []string }

// Enum accepts one of a fixed set of words, matched exactly.
func Enum(choices ...string) Parser {
	if len(choices) == 0 {
		panic("arguments: enum needs at least one choice")
	}
	return enumParser{choices: slices.Clone(choices)}
}

func (p enumParser) Identifier() string { return strings.Join(p.choices, "|") }

func (p enumParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	w := scanWord(c)
	if slices.Contains(p.choices, w) {
		return StringValue(w), nil
	}
	err := c.ErrorAt(start, cursor.BadArgument)
	err.Err = fmt.Errorf("want one of %s", strings.Join(p.choices, ", "))
	return Value{}, err
}

type decimalParser struct{}

// Decimal parses an exact base-10 number using the same lexical rules as
// Float.
func Decimal() Parser { return decimalParser{} }

func (decimalParser) Identifier() string { return "decimal" }

func (decimalParser) Parse(c *cursor.Cursor) (Value, error) {
	start := c.Offset()
	text := scanDecimal(c)
	if text == "" || text == "-" {
		return Value{}, c.ErrorAt(start, cursor.BadArgument)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		perr := c.ErrorAt(start, cursor.BadArgument)
		perr.Err = err
		return Value{}, perr
	}
	return DecimalValue(d), nil
}
