// Package forms describes the concrete syntaxes a command accepts. A Form is
// an ordered list of literal words and typed argument slots, optionally
// bound to a Handler.
package forms

import (
	"fmt"
	"strings"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/cursor"
)

// Element is one step of a Form: a literal word, or a named argument slot
// when Parser is set.
type Element struct {
	Literal string
	Name    string
	Parser  arguments.Parser
}

// Lit returns a literal element.
func Lit(text string) Element {
	return Element{Literal: text}
}

// Slot returns an argument element bound to name.
func Slot(name string, p arguments.Parser) Element {
	return Element{Name: name, Parser: p}
}

// IsSlot reports whether the element parses an argument.
func (e Element) IsSlot() bool {
	return e.Parser != nil
}

// Usage renders the element as it appears in help text.
func (e Element) Usage() string {
	if !e.IsSlot() {
		return e.Literal
	}
	return fmt.Sprintf("<%s: %s>", e.Name, e.Parser.Identifier())
}

// Form is one syntax alternative of a command.
type Form struct {
	Elements    []Element
	Handler     Handler
	Description string
}

// New returns a form made of the given elements.
func New(elements ...Element) Form {
	return Form{Elements: elements}
}

// Runs returns a copy of f bound to h.
func (f Form) Runs(h Handler) Form {
	f.Handler = h
	return f
}

// Describe returns a copy of f with a help description.
func (f Form) Describe(text string) Form {
	f.Description = text
	return f
}

// Executable reports whether the form has a handler.
func (f Form) Executable() bool {
	return f.Handler != nil
}

// Slots returns the argument elements in order.
func (f Form) Slots() []Element {
	var out []Element
	for _, e := range f.Elements {
		if e.IsSlot() {
			out = append(out, e)
		}
	}
	return out
}

// Usage renders the form, e.g. `with <arg: u32>`.
func (f Form) Usage() string {
	parts := make([]string, len(f.Elements))
	for i, e := range f.Elements {
		parts[i] = e.Usage()
	}
	return strings.Join(parts, " ")
}

// Match applies the form to c, which must already sit just past the
// command name. Every element is preceded by at least one space; after the
// last element only spaces may remain.
//
// Match mutates c, so callers pass a branch. The returned store only exists
// when the whole form matched.
func (f Form) Match(c *cursor.Cursor) (*arguments.Store, error) {
	store := arguments.NewStore()

	for _, e := range f.Elements {
		if e.IsSlot() && arguments.IsUnit(e.Parser) {
			v, _ := e.Parser.Parse(c)
			store.Set(e.Name, v)
			continue
		}

		if err := separator(c); err != nil {
			return nil, err
		}

		if !e.IsSlot() {
			if err := c.Literal(e.Literal); err != nil {
				return nil, err
			}
			continue
		}

		v, err := e.Parser.Parse(c)
		if err != nil {
			return nil, err
		}
		store.Set(e.Name, v)
	}

	c.SkipSpace()
	if err := c.End(); err != nil {
		return nil, err
	}
	return store, nil
}

func separator(c *cursor.Cursor) error {
	if c.AtEnd() {
		return c.Error(cursor.UnexpectedEOF)
	}
	if c.SkipSpace() == 0 {
		return c.Error(cursor.ExpectedWhitespace)
	}
	if c.AtEnd() {
		return c.Error(cursor.UnexpectedEOF)
	}
	return nil
}
