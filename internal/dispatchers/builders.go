package dispatchers

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/forms"
)

// Root returns an empty wildcard node.
func Root() *Node {
	return &Node{matcher: wildcardMatcher{}}
}

// Literal returns a node matching the fixed word text.
func Literal(text string) *Node {
	return &Node{matcher: literalMatcher{text: text}}
}

// Argument returns a node parsing one value with p and binding it to name.
func Argument(name string, p arguments.Parser) *Node {
	return &Node{matcher: argumentMatcher{name: name, parser: p}}
}

// Then appends children, which are tried in the order given.
func (n *Node) Then(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// Runs sets the node's handler.
func (n *Node) Runs(h forms.Handler) *Node {
	n.handler = h
	return n
}

// Executes sets a handler that has no exit code of its own.
func (n *Node) Executes(fn func(ctx context.Context, args *arguments.Store) error) *Node {
	return n.Runs(forms.Action(fn))
}

// Describe sets the node's help text.
func (n *Node) Describe(summary string) *Node {
	n.summary = summary
	return n
}

// In sets the node's help category.
func (n *Node) In(category CommandCategory) *Node {
	n.category = category
	return n
}
