// Package graphwalk walks an explicitly given tree with the bnb engine.
//
// It solves no optimisation problem of its own: every node carries a Value
// that is its bound while it has children and its score once it is a leaf.
// Values are expected to be admissible, i.e. an inner node's Value is at least
// the Value of every leaf below it.
//
// The package exists to make traversal behaviour observable: a Trace records
// the name of every evaluated node in evaluation order.
package graphwalk

import (
	"github.com/katalvlaran/bnbsearch/bnb"
)

// Node is one vertex of an explicit tree. Nodes are never mutated by a
// search, so one tree can be walked any number of times.
type Node struct {
	Name     string
	Value    int
	Children []*Node

	// Infeasible marks a node whose subtree must be discarded; it resolves to
	// an empty branch regardless of Children.
	Infeasible bool
}

// Leaf returns a childless node scoring value.
func Leaf(name string, value int) *Node {
	return &Node{Name: name, Value: value}
}

// Inner returns a node with the given bound and children.
func Inner(name string, bound int, children ...*Node) *Node {
	return &Node{Name: name, Value: bound, Children: children}
}

// Dead returns an infeasible node with the given bound.
func Dead(name string, bound int) *Node {
	return &Node{Name: name, Value: bound, Infeasible: true}
}

// Trace records evaluated node names. A nil *Trace records nothing.
type Trace struct {
	names []string
}

// Names returns the recorded names in evaluation order.
func (t *Trace) Names() []string {
	if t == nil {
		return nil
	}

	return append([]string(nil), t.names...)
}

// Reset forgets every recorded name.
func (t *Trace) Reset() {
	if t != nil {
		t.names = t.names[:0]
	}
}

func (t *Trace) record(name string) {
	if t != nil {
		t.names = append(t.names, name)
	}
}

// Step is the search node: a position in the tree plus the trace shared by
// every step of the same run.
type Step struct {
	node  *Node
	trace *Trace
}

// Start returns the root step for a walk of root recorded into trace
// (which may be nil).
func Start(root *Node, trace *Trace) *Step {
	return &Step{node: root, trace: trace}
}

// Node returns the tree node under s.
func (s *Step) Node() *Node { return s.node }

// Bound returns the node Value.
func (s *Step) Bound() int { return s.node.Value }

// BranchOrEvaluate records the visit, then solves a leaf to its Value or
// yields one step per child, created on demand.
func (s *Step) BranchOrEvaluate() bnb.Resolution[*Step, int] {
	s.trace.record(s.node.Name)
	switch {
	case s.node.Infeasible:
		return bnb.Pruned[*Step, int]()
	case len(s.node.Children) == 0:
		return bnb.Solved[*Step](s.node.Value)
	}

	children, trace := s.node.Children, s.trace
	return bnb.Branched[int](func(yield func(*Step) bool) {
		var c *Node
		for _, c = range children {
			if !yield(&Step{node: c, trace: trace}) {
				return
			}
		}
	})
}

// Solve walks root with method and returns the best leaf. trace may be nil.
func Solve(root *Node, trace *Trace, method bnb.Method[*Step], opts ...bnb.Option) (bnb.Result[*Step, int], error) {
	return bnb.Solve[*Step, int](Start(root, trace), method, opts...)
}

// Sample builds the reference tree:
//
//	             root(8)
//	           /         \
//	      p1-23(5)       p0-45(7)
//	      /     \        /     \
//	 leaf1(1)  p23(4)  leaf0(0)  p45(6)
//	           /   \             /   \
//	      leaf2(2) leaf3(3)  leaf4(4) leaf5(5)
//
// Every bound is admissible and leaf5 is the unique optimum.
func Sample() *Node {
	return Inner("root", 8,
		Inner("p1-23", 5,
			Leaf("leaf1", 1),
			Inner("p23", 4, Leaf("leaf2", 2), Leaf("leaf3", 3)),
		),
		Inner("p0-45", 7,
			Leaf("leaf0", 0),
			Inner("p45", 6, Leaf("leaf4", 4), Leaf("leaf5", 5)),
		),
	)
}
