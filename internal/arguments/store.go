package arguments

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Store holds the named values parsed for one successful match.
//
// A Store is created fresh for every attempted form and only reaches a
// handler when that form matched completely. Handlers treat it as read-only.
type Store struct {
	values map[string]Value
	order  []string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]Value)}
}

// Set records a value. Setting a name twice replaces the earlier value but
// keeps its original position.
func (s *Store) Set(name string, v Value) {
	if _, exists := s.values[name]; !exists {
		s.order = append(s.order, name)
	}
	s.values[name] = v
}

// Clone returns an independent copy of s.
func (s *Store) Clone() *Store {
	out := NewStore()
	if s == nil {
		return out
	}
	for _, name := range s.order {
		out.Set(name, s.values[name])
	}
	return out
}

// Lookup returns the raw value for name.
func (s *Store) Lookup(name string) (Value, bool) {
	if s == nil {
		return Value{}, false
	}
	v, ok := s.values[name]
	return v, ok
}

// Has reports whether name was bound.
func (s *Store) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the bound names in the order they were parsed.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of bound names.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// LookupError is returned by the typed getters when a name is missing or
// holds a different kind of value.
type LookupError struct {
	Name string
	Want string
	Got  Kind

	missing bool
}

func (e *LookupError) Error() string {
	if e.missing {
		return fmt.Sprintf("argument %q not provided", e.Name)
	}
	return fmt.Sprintf("argument %q is %s, not %s", e.Name, e.Got, e.Want)
}

func (s *Store) typed(name string, want Kind) (Value, error) {
	v, ok := s.Lookup(name)
	if !ok {
		return Value{}, &LookupError{Name: name, Want: want.String(), missing: true}
	}
	if v.kind != want {
		return Value{}, &LookupError{Name: name, Want: want.String(), Got: v.kind}
	}
	return v, nil
}

func (s *Store) Int(name string) (int64, error) {
	v, err := s.typed(name, KindInt)
	return v.i, err
}

func (s *Store) Uint(name string) (uint64, error) {
	v, err := s.typed(name, KindUint)
	return v.u, err
}

func (s *Store) Float(name string) (float64, error) {
	v, err := s.typed(name, KindFloat)
	return v.f, err
}

func (s *Store) String(name string) (string, error) {
	v, err := s.typed(name, KindString)
	return v.s, err
}

func (s *Store) Bool(name string) (bool, error) {
	v, err := s.typed(name, KindBool)
	return v.b, err
}

func (s *Store) Duration(name string) (time.Duration, error) {
	v, err := s.typed(name, KindDuration)
	return v.d, err
}

func (s *Store) Decimal(name string) (decimal.Decimal, error) {
	v, err := s.typed(name, KindDecimal)
	return v.dec, err
}

// StringOr returns the string bound to name, or def when it is absent.
func (s *Store) StringOr(name, def string) string {
	if v, err := s.String(name); err == nil {
		return v
	}
	return def
}

// Get returns the payload bound to name as a T. It works for custom values
// as well as the built-in kinds (int64, uint64, float64, string, ...).
func Get[T any](s *Store, name string) (T, error) {
	var zero T
	v, ok := s.Lookup(name)
	if !ok {
		return zero, &LookupError{Name: name, Want: fmt.Sprintf("%T", zero), missing: true}
	}
	out, ok := v.Any().(T)
	if !ok {
		return zero, &LookupError{Name: name, Want: fmt.Sprintf("%T", zero), Got: v.kind}
	}
	return out, nil
}
