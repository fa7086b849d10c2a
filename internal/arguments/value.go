// Package arguments defines the contract every command argument type
// satisfies, the built-in argument types, and the Store that carries parsed
// values to a handler.
package arguments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which field of a Value is populated.
type Kind int

const (
	KindUnit Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindBool
	KindDuration
	KindDecimal
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindDuration:
		return "duration"
	case KindDecimal:
		return "decimal"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Value is a parsed argument. Exactly one payload field is meaningful,
// selected by kind, so reading a built-in type never needs a type assertion.
type Value struct {
	kind   Kind
	i      int64
	u      uint64
	f      float64
	s      string
	b      bool
	d      time.Duration
	dec    decimal.Decimal
	custom any
}

func UnitValue() Value                     { return Value{kind: KindUnit} }
func IntValue(v int64) Value               { return Value{kind: KindInt, i: v} }
func UintValue(v uint64) Value             { return Value{kind: KindUint, u: v} }
func FloatValue(v float64) Value           { return Value{kind: KindFloat, f: v} }
func StringValue(v string) Value           { return Value{kind: KindString, s: v} }
func BoolValue(v bool) Value               { return Value{kind: KindBool, b: v} }
func DurationValue(v time.Duration) Value  { return Value{kind: KindDuration, d: v} }
func DecimalValue(v decimal.Decimal) Value { return Value{kind: KindDecimal, dec: v} }
func CustomValue(v any) Value              { return Value{kind: KindCustom, custom: v} }

// Kind reports which payload the value carries.
func (v Value) Kind() Kind { return v.kind }

func (v Value) AsInt() (int64, bool)               { return v.i, v.kind == KindInt }
func (v Value) AsUint() (uint64, bool)             { return v.u, v.kind == KindUint }
func (v Value) AsFloat() (float64, bool)           { return v.f, v.kind == KindFloat }
func (v Value) AsString() (string, bool)           { return v.s, v.kind == KindString }
func (v Value) AsBool() (bool, bool)               { return v.b, v.kind == KindBool }
func (v Value) AsDuration() (time.Duration, bool)  { return v.d, v.kind == KindDuration }
func (v Value) AsDecimal() (decimal.Decimal, bool) { return v.dec, v.kind == KindDecimal }

// Any returns the payload as a plain Go value.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindUint:
		return v.u
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindDuration:
		return v.d
	case KindDecimal:
		return v.dec
	case KindCustom:
		return v.custom
	default:
		return struct{}{}
	}
}

// String renders the value the way a user would type it back.
func (v Value) String() string {
	switch v.kind {
	case KindUnit:
		return "()"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindUint:
		return strconv.FormatUint(v.u, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDuration:
		return v.d.String()
	case KindDecimal:
		return v.dec.String()
	default:
		return fmt.Sprint(v.custom)
	}
}
