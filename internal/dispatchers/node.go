package dispatchers

import (
	"strings"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/cursor"
	"github.com/footprint-tools/verbs/internal/forms"
)

// Matcher consumes the token a Node stands for, binding any value it parses
// into args.
type Matcher interface {
	Match(c *cursor.Cursor, args *arguments.Store) error
	Usage() string
}

type wildcardMatcher struct{}

func (wildcardMatcher) Match(*cursor.Cursor, *arguments.Store) error { return nil }
func (wildcardMatcher) Usage() string                                { return "" }

type literalMatcher struct{ text string }

// Match requires the literal to be followed by whitespace or the end of the
// line, so "foo" never matches the start of "foobar".
func (m literalMatcher) Match(c *cursor.Cursor, _ *arguments.Store) error {
	start := c.Offset()
	if err := c.Literal(m.text); err != nil {
		return err
	}
	if r, ok := c.Peek(); ok && !cursor.IsSpace(r) {
		err := c.ErrorAt(start, cursor.BadLiteral)
		err.Expected = m.text
		return err
	}
	return nil
}

func (m literalMatcher) Usage() string { return m.text }

type argumentMatcher struct {
	name   string
	parser arguments.Parser
}

func (m argumentMatcher) Match(c *cursor.Cursor, args *arguments.Store) error {
	v, err := m.parser.Parse(c)
	if err != nil {
		return err
	}
	if r, ok := c.Peek(); ok && !cursor.IsSpace(r) {
		return c.Error(cursor.ExpectedWhitespace)
	}
	args.Set(m.name, v)
	return nil
}

func (m argumentMatcher) Usage() string {
	return forms.Slot(m.name, m.parser).Usage()
}

// Node is one step of a command tree. The root is a wildcard that consumes
// nothing; below it, each node matches a literal word or an argument.
type Node struct {
	matcher  Matcher
	children []*Node
	handler  forms.Handler
	summary  string
	category CommandCategory
}

// Children returns the node's children in registration order.
func (n *Node) Children() []*Node {
	return n.children
}

// Handler returns the node's handler, or nil.
func (n *Node) Handler() forms.Handler {
	return n.handler
}

// Summary returns the node's help text.
func (n *Node) Summary() string {
	return n.summary
}

// Category returns the help category of the node.
func (n *Node) Category() CommandCategory {
	return n.category
}

// Usage renders the node's own token.
func (n *Node) Usage() string {
	return n.matcher.Usage()
}

// IsLiteral reports whether the node matches a fixed word.
func (n *Node) IsLiteral() bool {
	_, ok := n.matcher.(literalMatcher)
	return ok
}

// TreeUsage describes one executable path through a command tree.
type TreeUsage struct {
	Usage    string
	Summary  string
	Category CommandCategory
}

// CollectUsage walks the tree depth-first and returns every path that ends
// in a handler.
func CollectUsage(root *Node) []TreeUsage {
	var out []TreeUsage
	var walk func(n *Node, prefix []string)
	walk = func(n *Node, prefix []string) {
		if u := n.Usage(); u != "" {
			prefix = append(prefix[:len(prefix):len(prefix)], u)
		}
		if n.handler != nil && len(prefix) > 0 {
			out = append(out, TreeUsage{
				Usage:    strings.Join(prefix, " "),
				Summary:  n.summary,
				Category: n.category,
			})
		}
		for _, child := range n.children {
			walk(child, prefix)
		}
	}
	walk(root, nil)
	return out
}

// CollectAllCommands returns the top-level literal words under root.
func CollectAllCommands(root *Node) []string {
	var out []string
	for _, child := range root.children {
		if lm, ok := child.matcher.(literalMatcher); ok {
			out = append(out, lm.text)
		}
	}
	return out
}
