/*
Package fstree builds parse trees from the derivations of package predictive.

Trees are stored in father-sibling form: every node knows its parent and its
right sibling, and nothing else. Children of a node are found by walking
from its first child along the right-sibling links. This is the classic
table representation of a parse tree, and it is easy to print as such:

	Index  Info        Parent  RightSibling
	1      <S>         -       -
	2      <A>         1       3
	3      ;           1       -

Node IDs start at 1, in the order nodes are created. NoNode marks an absent
link.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fstree

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/boar/ll1"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boar.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("boar.ll1")
}

// NoNode is the ID used for absent parent and sibling links.
const NoNode = 0

// Node is a node of a parse tree. Terminals are always leaves. Non-terminals
// get children from the rule they have been expanded with; a non-terminal
// expanded with an ε-rule has no children.
type Node struct {
	ID           int
	Symbol       string // grammar symbol
	Info         string // display form: <A> for non-terminals, bare terminals
	Parent       int
	RightSibling int
	terminal     bool
}

// IsTerminal is true for leaves representing terminals.
func (n Node) IsTerminal() bool {
	return n.terminal
}

// Tree is a parse tree in father-sibling form.
type Tree struct {
	nodes      []Node
	firstChild []int // leftmost child per node, derived from the parent links
}

// Build creates the parse tree for a leftmost derivation, as returned by
// a predictive parser for grammar g.
//
// The tree is expanded depth-first from the start symbol, each non-terminal
// node consuming the next rule application. Build fails with a *ll1.TreeError
// if the derivation does not fit g: if an application's left-hand side is not
// the non-terminal to expand next, if applications run out before the tree is
// complete, or if applications are left over afterwards.
func Build(g *ll1.Grammar, derivation []ll1.Application) (*Tree, error) {
	if len(derivation) == 0 {
		return nil, mismatch(&ll1.TreeError{Kind: ll1.ErrEmptyDerivation})
	}
	t := &Tree{}
	root := t.newNode(g, g.Start(), NoNode)
	pending := arraystack.New() // non-terminal nodes awaiting expansion
	pending.Push(root)
	next := 0
	for !pending.Empty() {
		v, _ := pending.Pop()
		id := v.(int)
		A := t.nodes[id-1].Symbol
		if next >= len(derivation) {
			return nil, mismatch(&ll1.TreeError{Kind: ll1.ErrProductionsExhausted, Expected: A})
		}
		app := derivation[next]
		next++
		if app.Rule.LHS != A {
			return nil, mismatch(&ll1.TreeError{
				Kind:     ll1.ErrRuleMismatch,
				Step:     app.Step,
				Expected: A,
				Found:    app.Rule.LHS,
			})
		}
		tracer().Debugf("tree: expand node %d with %v", id, app.Rule)
		var children []int
		for _, sym := range app.Rule.RHS() {
			if sym == ll1.Epsilon {
				continue
			}
			child := t.newNode(g, sym, id)
			if len(children) > 0 {
				t.nodes[children[len(children)-1]-1].RightSibling = child
			}
			children = append(children, child)
		}
		if len(children) > 0 {
			t.firstChild[id-1] = children[0]
		}
		for i := len(children) - 1; i >= 0; i-- {
			if !t.nodes[children[i]-1].terminal {
				pending.Push(children[i])
			}
		}
	}
	if next < len(derivation) {
		return nil, mismatch(&ll1.TreeError{Kind: ll1.ErrUnconsumedProductions, Step: derivation[next].Step})
	}
	tracer().Infof("parse tree with %d nodes", len(t.nodes))
	return t, nil
}

func (t *Tree) newNode(g *ll1.Grammar, sym string, parent int) int {
	n := Node{
		ID:       len(t.nodes) + 1,
		Symbol:   sym,
		Info:     g.Display(sym),
		Parent:   parent,
		terminal: !g.IsNonTerminal(sym),
	}
	t.nodes = append(t.nodes, n)
	t.firstChild = append(t.firstChild, NoNode)
	return n.ID
}

func mismatch(err *ll1.TreeError) error {
	tracer().Errorf("%v", err)
	if gconf.GetBool("panic-on-tree-mismatch") {
		panic(`parse tree construction failed.

Configuration flag panic-on-tree-mismatch is set to true. It is aimed at helping
to debug a parser and do a post-mortem of derivations which do not fit the
grammar. If you did not expect this to panic, please unset
panic-on-tree-mismatch to its default (false).

` + err.Error())
	}
	return err
}

// --- Navigation ------------------------------------------------------------

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.nodes[0]
}

// Node returns the node with a given ID.
func (t *Tree) Node(id int) (Node, bool) {
	if id < 1 || id > len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[id-1], true
}

// Nodes returns all nodes, ordered by ID.
func (t *Tree) Nodes() []Node {
	return append([]Node(nil), t.nodes...)
}

// FirstChild returns the ID of the leftmost child of node id, or NoNode.
func (t *Tree) FirstChild(id int) int {
	if id < 1 || id > len(t.nodes) {
		return NoNode
	}
	return t.firstChild[id-1]
}

// Children returns the children of node id, from left to right.
func (t *Tree) Children(id int) []Node {
	var children []Node
	for c := t.FirstChild(id); c != NoNode; c = t.nodes[c-1].RightSibling {
		children = append(children, t.nodes[c-1])
	}
	return children
}

type visit struct {
	id, depth int
}

// Walk visits the nodes of the tree depth-first, from left to right, calling
// f with each node and its depth. The root has depth 0.
func (t *Tree) Walk(f func(n Node, depth int)) {
	if len(t.nodes) == 0 {
		return
	}
	stack := arraystack.New()
	stack.Push(visit{id: 1})
	var siblings []int
	for !stack.Empty() {
		v, _ := stack.Pop()
		at := v.(visit)
		f(t.nodes[at.id-1], at.depth)
		siblings = siblings[:0]
		for c := t.firstChild[at.id-1]; c != NoNode; c = t.nodes[c-1].RightSibling {
			siblings = append(siblings, c)
		}
		for i := len(siblings) - 1; i >= 0; i-- {
			stack.Push(visit{id: siblings[i], depth: at.depth + 1})
		}
	}
}
