package bnb

import (
	"cmp"
	"fmt"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// searcher holds the state of one run: the incumbent and its node, the
// counters and the configured sinks. Nothing in it outlives the run.
type searcher[N Subproblem[N, S], S cmp.Ordered] struct {
	opts   Options
	logger *log.Logger
	best   Incumbent[S]
	node   N
	stats  Stats
}

func newSearcher[N Subproblem[N, S], S cmp.Ordered](o Options) *searcher[N, S] {
	s := &searcher[N, S]{opts: o, logger: o.Logger}
	if o.logging {
		s.logger = o.Logger.With("run", uuid.NewString())
	}

	return s
}

// observable is implemented by the built-in containers, which accept an
// extra prune hook after construction.
type observable interface {
	observe(fn func(kind PruneKind, count int))
}

// prune is installed as the prune hook of containers built by Solve.
func (s *searcher[N, S]) prune(kind PruneKind, count int) {
	s.account(kind, count)
	if s.opts.OnPrune != nil {
		s.opts.OnPrune(kind, count)
	}
}

// account records a prune event in the stats and forwards it to the Observer.
func (s *searcher[N, S]) account(kind PruneKind, count int) {
	switch kind {
	case PrunedOnPush:
		s.stats.PrunedOnPush += count
	case PrunedOnPop:
		s.stats.PrunedOnPop += count
	case EarlyStop:
		s.stats.EarlyStopped = true
		s.stats.PrunedOnPop++
		s.stats.Abandoned += count - 1
	}
	s.opts.Observer.OnPrune(kind, count)
}

// run is the driver loop: pop, evaluate, then either push the children or
// offer the leaf to the incumbent, until the container gives up.
func (s *searcher[N, S]) run(c Container[N, S], label string) Result[N, S] {
	start := time.Now()
	s.logger.Debug("search started", "traversal", label, "pruning", s.opts.Pruning, "pending", c.Len())

	var (
		node N
		ok   bool
	)
	for {
		node, ok = c.Pop(s.best)
		if !ok {
			break
		}
		s.stats.Popped++
		s.opts.Observer.OnPop()

		switch r := node.BranchOrEvaluate().(type) {
		case Solution[N, S]:
			s.offer(node, r.Score)
		case Branch[N, S]:
			s.branch(c, r.Children)
		default:
			// nil resolution: nothing to explore below this node
			s.branch(c, nil)
		}
	}

	s.stats.Elapsed = time.Since(start)
	s.logger.Debug("search finished",
		"found", s.best.Found,
		"popped", s.stats.Popped,
		"solved", s.stats.Solved,
		"pruned_push", s.stats.PrunedOnPush,
		"pruned_pop", s.stats.PrunedOnPop,
		"early_stop", s.stats.EarlyStopped,
		"elapsed", s.stats.Elapsed.Round(time.Microsecond),
	)
	s.opts.Observer.OnFinish(s.stats)

	return Result[N, S]{Node: s.node, Score: s.best.Score, Found: s.best.Found, Stats: s.stats}
}

// branch pushes every child, each tested against the incumbent of the moment.
func (s *searcher[N, S]) branch(c Container[N, S], children iter.Seq[N]) {
	n := 0
	if children != nil {
		for child := range children {
			c.Push(child, s.best)
			n++
		}
	}
	s.stats.Branched++
	s.stats.Children += n
	s.opts.Observer.OnBranch(n)
}

// offer replaces the incumbent when score is strictly better; ties keep the
// first solution found.
func (s *searcher[N, S]) offer(node N, score S) {
	s.stats.Solved++
	improved := !s.best.Found || s.best.Score < score
	if improved {
		s.best = Incumbent[S]{Score: score, Found: true}
		s.node = node
		s.stats.Improved++
		s.logger.Debug("incumbent improved", "score", score, "popped", s.stats.Popped)
	}
	s.opts.Observer.OnSolve(improved)
}

// SolveWithContainer runs branch-and-bound over a caller-built container that
// already holds the root node(s). The container alone decides the visiting
// order, the pruning and any early termination, which makes this the entry
// point for strategies outside the built-in set.
//
// The Logger and Observer options apply; Pruning and the prune hook belong to
// the container and must be given to its constructor instead. Prune events of
// a built-in container are also counted in Stats and sent to the Observer,
// after the container's own hook; the container stays bound to this run.
//
// Errors:
//   - ErrNilContainer if c is nil.
//   - ErrOptionViolation for invalid options.
func SolveWithContainer[N Subproblem[N, S], S cmp.Ordered](c Container[N, S], opts ...Option) (Result[N, S], error) {
	if c == nil {
		return Result[N, S]{}, ErrNilContainer
	}
	o, err := buildOptions(opts)
	if err != nil {
		return Result[N, S]{}, err
	}

	s := newSearcher[N, S](o)
	if oc, ok := c.(observable); ok {
		oc.observe(s.account)
	}

	return s.run(c, fmt.Sprintf("%T", c)), nil
}

// Solve finds the best leaf below root using one of the built-in traversals.
//
// It builds the container for method (Stack, Queue or PriorityQueue) seeded
// with root, wires the configured pruning policy, and runs the driver loop.
// A run without any solved leaf returns Found == false and a nil error.
//
// Errors:
//   - ErrNilComparator if method is Custom without Compare.
//   - ErrUnknownTraversal for a Traversal outside the closed set.
//   - ErrOptionViolation for invalid options.
//
// Complexity: exponential in the worst case; every popped node costs one
// BranchOrEvaluate plus one Bound per pushed child, and O(log n) per heap
// operation for BestFirst and Custom.
func Solve[N Subproblem[N, S], S cmp.Ordered](root N, method Method[N], opts ...Option) (Result[N, S], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result[N, S]{}, err
	}
	s := newSearcher[N, S](o)

	var (
		c     Container[N, S]
		roots = []N{root}
		copts = []Option{WithPruning(o.Pruning), WithPruneHook(s.prune)}
	)
	switch method.Traversal {
	case DepthFirst:
		c, err = NewStack[N, S](roots, copts...)
	case BreadthFirst:
		c, err = NewQueue[N, S](roots, copts...)
	case BestFirst:
		c, err = NewBestFirst[N, S](roots, copts...)
	case Custom:
		if method.Compare == nil {
			return Result[N, S]{}, ErrNilComparator
		}
		c, err = NewCustom[N, S](roots, method.Compare, method.CompareSupersedesBound, copts...)
	default:
		return Result[N, S]{}, fmt.Errorf("%w: %v", ErrUnknownTraversal, method.Traversal)
	}
	if err != nil {
		return Result[N, S]{}, err
	}

	return s.run(c, method.Traversal.String()), nil
}
