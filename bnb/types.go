// Package bnb defines the subproblem contract, resolution variants, results,
// pruning policies and sentinel errors shared by every traversal strategy.
package bnb

import (
	"cmp"
	"errors"
	"iter"
	"time"
)

// Sentinel errors for search configuration. None of them describes a search
// outcome: a run that finds no feasible leaf returns Result.Found == false
// and a nil error.
var (
	// ErrNilComparator is returned when the Custom traversal is requested
	// without a comparator.
	ErrNilComparator = errors.New("bnb: custom traversal requires a comparator")

	// ErrUnknownTraversal is returned for a Traversal value outside the
	// closed set (DepthFirst, BreadthFirst, BestFirst, Custom).
	ErrUnknownTraversal = errors.New("bnb: unknown traversal")

	// ErrNilContainer is returned by SolveWithContainer for a nil container.
	ErrNilContainer = errors.New("bnb: container is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bnb: invalid option supplied")

	// ErrInvalidConfig is returned when a Config cannot be decoded or
	// names an unsupported traversal, pruning policy or log level.
	ErrInvalidConfig = errors.New("bnb: invalid config")
)

// Subproblem is the contract every client node type implements.
//
// N is the concrete node type (normally a pointer to the client struct) and
// S the score type; greater scores are better.
//
// BranchOrEvaluate is the only state transition. It may mutate the receiver:
//   - when it returns a Branch, the engine discards the receiver afterwards,
//     so any mutation is allowed (for example moving its storage into a child);
//   - when it returns a Solution, the receiver itself becomes the candidate
//     answer, so it must still describe the same subproblem.
//
// Implementations should perform cheap forced deductions before branching.
// Infeasibility is reported as an empty Branch (see Pruned), never a panic.
//
// Bound must be side-effect free and admissible: no score reachable below the
// node may exceed it. It is called on every push and pop of the node, so it
// should be cheap or memoised. The engine does not verify admissibility; a
// violating bound silently yields a suboptimal answer.
type Subproblem[N any, S cmp.Ordered] interface {
	BranchOrEvaluate() Resolution[N, S]
	Bound() S
}

// Resolution is the outcome of evaluating a subproblem: either a Branch or a
// Solution. The set of variants is closed.
type Resolution[N any, S cmp.Ordered] interface {
	resolution()
}

// Branch splits a subproblem into children. Children is produced lazily and
// ranged over exactly once; it must be finite. A nil or empty sequence
// discards the subtree.
type Branch[N any, S cmp.Ordered] struct {
	Children iter.Seq[N]
}

func (Branch[N, S]) resolution() {}

// Solution marks a subproblem as a feasible leaf whose objective value is Score.
type Solution[N any, S cmp.Ordered] struct {
	Score S
}

func (Solution[N, S]) resolution() {}

// Branched wraps children into a Branch resolution. The node type is inferred
// from the sequence, so callers only spell the score type:
//
//	return bnb.Branched[int](slices.Values(kids))
func Branched[S cmp.Ordered, N any](children iter.Seq[N]) Resolution[N, S] {
	return Branch[N, S]{Children: children}
}

// Solved wraps an objective value into a Solution resolution:
//
//	return bnb.Solved[*Node](n.value)
func Solved[N any, S cmp.Ordered](score S) Resolution[N, S] {
	return Solution[N, S]{Score: score}
}

// Pruned returns an empty Branch, i.e. an infeasible subtree.
func Pruned[N any, S cmp.Ordered]() Resolution[N, S] {
	return Branch[N, S]{}
}

// Incumbent is the optional score of the best solution found so far.
// The zero value means no solution has been found yet.
type Incumbent[S cmp.Ordered] struct {
	Score S
	Found bool
}

// Dominates reports whether a subproblem with the given bound cannot beat the
// incumbent. Ties are dominated: an equal score never replaces the incumbent.
func (b Incumbent[S]) Dominates(bound S) bool {
	return b.Found && bound <= b.Score
}

// Pruning is a bit set selecting where containers test candidates against
// the incumbent.
type Pruning uint8

const (
	// PruneNone disables every incumbent test (brute-force enumeration).
	PruneNone Pruning = 0

	// PruneOnPush refuses dominated items at insertion ("eager" pruning).
	PruneOnPush Pruning = 1 << 0

	// PruneOnPop discards dominated items at removal ("lazy" pruning). Early
	// stop of priority containers is part of this policy.
	PruneOnPop Pruning = 1 << 1

	// PruneBoth is the default policy of every built-in container.
	PruneBoth = PruneOnPush | PruneOnPop
)

// PruneKind tells observers why items left a container without evaluation.
type PruneKind uint8

const (
	// PrunedOnPush counts an item refused at insertion.
	PrunedOnPush PruneKind = iota + 1

	// PrunedOnPop counts an item discarded at removal.
	PrunedOnPop

	// EarlyStop reports that a priority container gave up: its best item was
	// dominated, so it and every remaining item were dropped.
	EarlyStop
)

// String returns a short, metric-friendly name of k.
func (k PruneKind) String() string {
	switch k {
	case PrunedOnPush:
		return "push"
	case PrunedOnPop:
		return "pop"
	case EarlyStop:
		return "early_stop"
	default:
		return "unknown"
	}
}

// Stats summarises one search run.
type Stats struct {
	Popped       int // nodes handed to BranchOrEvaluate
	Branched     int // evaluations that returned a Branch
	Children     int // children produced by all branches
	Solved       int // evaluations that returned a Solution
	Improved     int // solutions that replaced the incumbent
	PrunedOnPush int // items refused at insertion
	PrunedOnPop  int // items discarded at removal
	Abandoned    int // items dropped by an early stop
	EarlyStopped bool
	Elapsed      time.Duration
}

// Result holds the outcome of a search run:
//   - Node, Score: the best leaf and its objective value, valid when Found;
//   - Found: false when no leaf was ever solved (a normal outcome);
//   - Stats: counters for diagnostics.
type Result[N any, S cmp.Ordered] struct {
	Node  N
	Score S
	Found bool
	Stats Stats
}
