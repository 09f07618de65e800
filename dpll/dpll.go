// Package dpll decides CNF satisfiability with the bnb engine.
//
// A Node is a partial assignment. Evaluating it first runs unit propagation
// to a fixpoint; a falsified clause makes the node infeasible (empty branch),
// a formula with every clause satisfied is a solution, and anything else
// branches on the next unassigned variable, yielding the true child before
// the false one.
//
// Satisfiability has no objective, so every solution scores 0 and every bound
// is 0: the first model found dominates everything still pending, which ends
// the search under any traversal with lazy pruning.
//
// Literals use the DIMACS convention: variable v is literal v, its negation
// is -v, and variables are numbered 1..numVars.
package dpll

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// Sentinel errors for malformed formulas.
var (
	// ErrNegativeVars is returned for a negative variable count.
	ErrNegativeVars = errors.New("dpll: negative variable count")

	// ErrLiteralOutOfRange is returned for literal 0 or |literal| > numVars.
	ErrLiteralOutOfRange = errors.New("dpll: literal out of range")

	// ErrMalformedDIMACS is returned by ParseDIMACS for unreadable input.
	ErrMalformedDIMACS = errors.New("dpll: malformed DIMACS input")
)

// Variable values in an assignment.
const (
	unset   int8 = 0
	isTrue  int8 = 1
	isFalse int8 = -1
)

type clauseState uint8

const (
	satisfied clauseState = iota
	falsified
	unit // exactly one literal unset, none true
	open // two or more literals unset, none true
)

// formula is shared read-only by every node of one search.
type formula struct {
	numVars int
	clauses [][]int
	order   []int // branching order: most frequent variable first
}

// Node is a partial assignment of a formula.
type Node struct {
	f      *formula
	next   int    // position in f.order where the scan for a free variable resumes
	assign []int8 // indexed by variable, 1-based
}

// New validates the formula and returns the root node with nothing assigned.
// clauses is copied. An empty clause is legal and makes the formula
// unsatisfiable; an empty formula is satisfied by any assignment.
func New(numVars int, clauses [][]int) (*Node, error) {
	if numVars < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeVars, numVars)
	}
	freq := make([]int, numVars+1)
	cs := make([][]int, len(clauses))
	for i, c := range clauses {
		for _, lit := range c {
			v := abs(lit)
			if lit == 0 || v > numVars {
				return nil, fmt.Errorf("%w: %d in clause %d (numVars=%d)", ErrLiteralOutOfRange, lit, i, numVars)
			}
			freq[v]++
		}
		cs[i] = slices.Clone(c)
	}

	order := make([]int, 0, numVars)
	for v := 1; v <= numVars; v++ {
		if freq[v] > 0 {
			order = append(order, v)
		}
	}
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(freq[b], freq[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	return &Node{
		f:      &formula{numVars: numVars, clauses: cs, order: order},
		assign: make([]int8, numVars+1),
	}, nil
}

func abs(lit int) int {
	if lit < 0 {
		return -lit
	}

	return lit
}

// value returns the truth value of lit under a.
func value(a []int8, lit int) int8 {
	if lit < 0 {
		return -a[-lit]
	}

	return a[lit]
}

// eval classifies clause c under a. For a unit clause it also returns the
// remaining literal.
func eval(a []int8, c []int) (clauseState, int) {
	free, last := 0, 0
	for _, lit := range c {
		switch value(a, lit) {
		case isTrue:
			return satisfied, 0
		case unset:
			free++
			last = lit
		}
	}
	switch free {
	case 0:
		return falsified, 0
	case 1:
		return unit, last
	default:
		return open, 0
	}
}

// propagate assigns unit literals until none is left. It returns false on a
// conflict, otherwise the number of clauses still open.
func (n *Node) propagate() (int, bool) {
	for {
		changed, pending := false, 0
		for _, c := range n.f.clauses {
			state, lit := eval(n.assign, c)
			switch state {
			case falsified:
				return 0, false
			case unit:
				if lit < 0 {
					n.assign[-lit] = isFalse
				} else {
					n.assign[lit] = isTrue
				}
				changed = true
			case open:
				pending++
			}
		}
		if !changed {
			return pending, true
		}
	}
}

// Bound is always 0.
func (n *Node) Bound() int { return 0 }

// BranchOrEvaluate propagates units, then solves, refutes or splits n.
func (n *Node) BranchOrEvaluate() bnb.Resolution[*Node, int] {
	pending, ok := n.propagate()
	if !ok {
		return bnb.Pruned[*Node, int]()
	}
	if pending == 0 {
		return bnb.Solved[*Node](0)
	}

	// an open clause has two free variables, both in order
	i := n.next
	for n.assign[n.f.order[i]] != unset {
		i++
	}
	v := n.f.order[i]
	children := make([]*Node, 0, 2)
	for _, val := range [...]int8{isTrue, isFalse} {
		child := &Node{f: n.f, next: i + 1, assign: slices.Clone(n.assign)}
		child.assign[v] = val
		children = append(children, child)
	}

	return bnb.Branched[int](slices.Values(children))
}

// Model returns the assignment as a slice indexed by variable - 1. Variables
// left unassigned are reported false; every clause is satisfied regardless.
func (n *Node) Model() []bool {
	m := make([]bool, n.f.numVars)
	for v := 1; v <= n.f.numVars; v++ {
		m[v-1] = n.assign[v] == isTrue
	}

	return m
}

// Satisfies reports whether model satisfies every clause of the formula.
func (n *Node) Satisfies(model []bool) bool {
	if len(model) != n.f.numVars {
		return false
	}
	for _, c := range n.f.clauses {
		ok := false
		for _, lit := range c {
			if (lit > 0) == model[abs(lit)-1] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// Solve searches for a model with method. It returns the model and true, or
// nil and false when the formula is unsatisfiable.
func Solve(numVars int, clauses [][]int, method bnb.Method[*Node], opts ...bnb.Option) ([]bool, bool, error) {
	root, err := New(numVars, clauses)
	if err != nil {
		return nil, false, err
	}
	res, err := bnb.Solve[*Node, int](root, method, opts...)
	if err != nil || !res.Found {
		return nil, false, err
	}

	return res.Node.Model(), true, nil
}
