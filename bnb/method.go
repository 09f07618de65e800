package bnb

import (
	"fmt"
	"strings"
)

// Traversal names one of the built-in orders of visiting the subproblem tree.
type Traversal uint8

const (
	// DepthFirst descends into every subtree before its siblings (LIFO).
	// Siblings are evaluated last-produced first.
	DepthFirst Traversal = iota

	// BreadthFirst visits the tree layer by layer (FIFO), in production
	// order within a layer.
	BreadthFirst

	// BestFirst (greedy search) always evaluates the pending subproblem with
	// the greatest bound and stops as soon as that bound is dominated.
	BestFirst

	// Custom evaluates pending subproblems in the order of a caller
	// comparator; see Method.
	Custom
)

var traversalNames = [...]string{
	DepthFirst:   "depth-first",
	BreadthFirst: "breadth-first",
	BestFirst:    "best-first",
	Custom:       "custom",
}

// String returns the canonical name of t.
func (t Traversal) String() string {
	if int(t) < len(traversalNames) {
		return traversalNames[t]
	}

	return fmt.Sprintf("Traversal(%d)", uint8(t))
}

// ParseTraversal resolves a traversal by name. Besides the canonical names it
// accepts "dfs", "bfs", "befs" and "greedy". Matching is case-insensitive.
func ParseTraversal(name string) (Traversal, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "depth-first", "depthfirst", "dfs":
		return DepthFirst, nil
	case "breadth-first", "breadthfirst", "bfs":
		return BreadthFirst, nil
	case "best-first", "bestfirst", "befs", "greedy":
		return BestFirst, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, name)
	}
}

// Method selects how Solve walks the tree.
//
// Compare and CompareSupersedesBound are only read for the Custom traversal.
// Compare(a, b) > 0 means a is evaluated before b. Set
// CompareSupersedesBound only if Compare refines the bound order:
// Compare(a, b) < 0 must imply a.Bound() <= b.Bound(). The flag enables the
// same early stop as BestFirst; without it, dominated items are skipped but
// the search goes on, since a later item may still have a better bound.
type Method[N any] struct {
	Traversal              Traversal
	Compare                func(a, b N) int
	CompareSupersedesBound bool
}

// DepthFirstSearch returns the depth-first Method.
func DepthFirstSearch[N any]() Method[N] { return Method[N]{Traversal: DepthFirst} }

// BreadthFirstSearch returns the breadth-first Method.
func BreadthFirstSearch[N any]() Method[N] { return Method[N]{Traversal: BreadthFirst} }

// BestFirstSearch returns the best-first (greedy) Method.
func BestFirstSearch[N any]() Method[N] { return Method[N]{Traversal: BestFirst} }

// CustomOrder returns a Custom Method ordered by compare.
func CustomOrder[N any](compare func(a, b N) int, supersedesBound bool) Method[N] {
	return Method[N]{Traversal: Custom, Compare: compare, CompareSupersedesBound: supersedesBound}
}

// String returns the traversal name.
func (m Method[N]) String() string { return m.Traversal.String() }
