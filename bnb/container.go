package bnb

import "cmp"

// Container holds the pending subproblems of a run and decides both the
// order in which they are evaluated and when the run may stop early.
//
// best is the current incumbent (its zero value means "none yet"):
//   - Push may refuse an item that best already dominates (eager pruning);
//   - Pop may discard dominated items before returning one (lazy pruning),
//     and returns false exactly when nothing worth evaluating is left.
//
// Implementations outside this package can add their own policies, such as
// randomised order, and run them through SolveWithContainer.
type Container[N Subproblem[N, S], S cmp.Ordered] interface {
	Push(item N, best Incumbent[S])
	Pop(best Incumbent[S]) (N, bool)
	Len() int
}

// pruner carries the incumbent tests shared by the built-in containers.
type pruner[S cmp.Ordered] struct {
	policy  Pruning
	onPrune func(kind PruneKind, count int)
}

// newPruner extracts the container-level settings from opts.
func newPruner[S cmp.Ordered](opts []Option) (pruner[S], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return pruner[S]{}, err
	}

	return pruner[S]{policy: o.Pruning, onPrune: o.OnPrune}, nil
}

// refuse reports whether an item with the given bound must not be inserted.
func (p *pruner[S]) refuse(bound S, best Incumbent[S]) bool {
	if p.policy&PruneOnPush == 0 || !best.Dominates(bound) {
		return false
	}
	p.report(PrunedOnPush, 1)

	return true
}

// discard reports whether a removed item with the given bound must be skipped.
func (p *pruner[S]) discard(bound S, best Incumbent[S]) bool {
	if p.policy&PruneOnPop == 0 || !best.Dominates(bound) {
		return false
	}
	p.report(PrunedOnPop, 1)

	return true
}

// observe chains fn after the prune hook already installed, if any.
func (p *pruner[S]) observe(fn func(kind PruneKind, count int)) {
	prev := p.onPrune
	if prev == nil {
		p.onPrune = fn
		return
	}
	p.onPrune = func(kind PruneKind, count int) {
		prev(kind, count)
		fn(kind, count)
	}
}

func (p *pruner[S]) report(kind PruneKind, count int) {
	if p.onPrune != nil && count > 0 {
		p.onPrune(kind, count)
	}
}
