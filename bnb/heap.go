package bnb

import (
	"cmp"
	"container/heap"
)

// PriorityQueue is the max-priority container behind best-first and
// custom-order search.
//
// When stopEarly is set, the first dominated item popped ends the run: the
// queue is ordered so that nothing behind that item can have a better bound,
// so the item and everything still queued are dropped and Pop returns false.
// Without stopEarly, dominated items are skipped one at a time.
type PriorityQueue[N Subproblem[N, S], S cmp.Ordered] struct {
	heap      candidateHeap[N, S]
	seq       uint64
	stopEarly bool
	pruner[S]
}

// NewBestFirst returns a PriorityQueue ordered by Bound (greatest first) with
// early stop enabled, seeded with roots. Equal bounds are popped newest first.
func NewBestFirst[N Subproblem[N, S], S cmp.Ordered](roots []N, opts ...Option) (*PriorityQueue[N, S], error) {
	return newPriorityQueue(roots, byBound[N, S](), true, opts)
}

// NewCustom returns a PriorityQueue ordered by compare, seeded with roots.
// compare(a, b) > 0 means a is evaluated before b; equal items are popped
// newest first.
//
// Set supersedesBound only if compare refines the bound order, i.e.
// compare(a, b) < 0 implies a.Bound() <= b.Bound(). It enables early stop;
// a comparator that breaks this promise silently loses solutions.
func NewCustom[N Subproblem[N, S], S cmp.Ordered](
	roots []N,
	compare func(a, b N) int,
	supersedesBound bool,
	opts ...Option,
) (*PriorityQueue[N, S], error) {
	if compare == nil {
		return nil, ErrNilComparator
	}

	return newPriorityQueue(roots, byComparator[N, S](compare), supersedesBound, opts)
}

func newPriorityQueue[N Subproblem[N, S], S cmp.Ordered](
	roots []N,
	before precedes[N, S],
	stopEarly bool,
	opts []Option,
) (*PriorityQueue[N, S], error) {
	p, err := newPruner[S](opts)
	if err != nil {
		return nil, err
	}
	q := &PriorityQueue[N, S]{
		heap:      candidateHeap[N, S]{items: make([]candidate[N, S], 0, len(roots)), before: before},
		stopEarly: stopEarly,
		pruner:    p,
	}
	var root N
	for _, root = range roots {
		q.insert(root, root.Bound())
	}

	return q, nil
}

// Push inserts item unless best dominates it.
func (q *PriorityQueue[N, S]) Push(item N, best Incumbent[S]) {
	bound := item.Bound()
	if q.refuse(bound, best) {
		return
	}
	q.insert(item, bound)
}

func (q *PriorityQueue[N, S]) insert(item N, bound S) {
	heap.Push(&q.heap, candidate[N, S]{node: item, bound: bound, seq: q.seq})
	q.seq++
}

// Pop removes the highest-priority item that best does not dominate.
func (q *PriorityQueue[N, S]) Pop(best Incumbent[S]) (N, bool) {
	var zero N
	for q.heap.Len() > 0 {
		c := heap.Pop(&q.heap).(candidate[N, S])
		if q.policy&PruneOnPop == 0 || !best.Dominates(c.bound) {
			return c.node, true
		}
		if q.stopEarly {
			q.report(EarlyStop, 1+q.heap.reset())

			return zero, false
		}
		q.report(PrunedOnPop, 1)
	}

	return zero, false
}

// Len returns the number of pending items.
func (q *PriorityQueue[N, S]) Len() int { return q.heap.Len() }
