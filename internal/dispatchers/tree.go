package dispatchers

import (
	"context"

	"github.com/footprint-tools/verbs/internal/arguments"
	"github.com/footprint-tools/verbs/internal/cursor"
	"github.com/footprint-tools/verbs/internal/forms"
)

// Tree dispatches lines through a command tree.
type Tree struct {
	root   *Node
	policy ErrorPolicy
}

// TreeOption configures a Tree.
type TreeOption func(*Tree)

// WithTreeErrorPolicy selects which child failure is surfaced when no child
// of a node matches.
func WithTreeErrorPolicy(p ErrorPolicy) TreeOption {
	return func(t *Tree) {
		t.policy = p
	}
}

// NewTree returns a tree with an empty wildcard root.
func NewTree(opts ...TreeOption) *Tree {
	t := &Tree{root: Root()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register adds top-level commands under the root.
func (t *Tree) Register(nodes ...*Node) {
	t.root.Then(nodes...)
}

// Root returns the wildcard root node.
func (t *Tree) Root() *Node {
	return t.root
}

// Resolve routes line to a handler without running it. Leading whitespace
// is ignored.
func (t *Tree) Resolve(line string) (*Resolution, error) {
	c := cursor.New(line)
	c.SkipSpace()

	h, args, err := t.traverse(t.root, c, arguments.NewStore())
	if err != nil {
		return nil, err
	}
	return &Resolution{Command: firstWord(line), Handler: h, Args: args}, nil
}

// Dispatch resolves line and runs its handler.
func (t *Tree) Dispatch(ctx context.Context, line string) (int, error) {
	res, err := t.Resolve(line)
	if err != nil {
		return 0, err
	}
	return res.Execute(ctx)
}

// traverse matches n at c and then either stops, when the line is
// exhausted, or hands the remainder to the first child that accepts it.
// Each child works on its own branch and its own copy of args.
func (t *Tree) traverse(n *Node, c *cursor.Cursor, args *arguments.Store) (forms.Handler, *arguments.Store, error) {
	if err := n.matcher.Match(c, args); err != nil {
		return nil, nil, err
	}
	c.SkipSpace()

	if c.AtEnd() {
		if n.handler == nil {
			return nil, nil, &MatchError{
				Kind:   EndOfInput,
				Source: c.Source(),
				Offset: c.Offset(),
			}
		}
		return n.handler, args, nil
	}

	var failure error
	for _, child := range n.children {
		h, bound, err := t.traverse(child, c.Branch(), args.Clone())
		if err == nil {
			return h, bound, nil
		}
		failure = t.policy.pick(failure, err)
	}

	// A child that got past this node's position explains the failure
	// better than a generic invalid-input error.
	if failure != nil && errorOffset(failure) > c.Offset() {
		return nil, nil, failure
	}
	return nil, nil, &MatchError{
		Kind:      InvalidInput,
		Source:    c.Source(),
		Offset:    c.Offset(),
		Remainder: c.Rest(),
		Cause:     failure,
	}
}

func firstWord(line string) string {
	c := cursor.New(line)
	c.SkipSpace()
	return c.ScanWhile(func(r rune) bool { return !cursor.IsSpace(r) })
}
