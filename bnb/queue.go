package bnb

import "cmp"

// Queue is the FIFO container behind breadth-first search: the tree is
// visited layer by layer, and within a layer in production order.
type Queue[N Subproblem[N, S], S cmp.Ordered] struct {
	items []N
	pruner[S]
}

// NewQueue returns a Queue seeded with roots. It honours WithPruning and
// WithPruneHook; other options are ignored.
func NewQueue[N Subproblem[N, S], S cmp.Ordered](roots []N, opts ...Option) (*Queue[N, S], error) {
	p, err := newPruner[S](opts)
	if err != nil {
		return nil, err
	}
	q := &Queue[N, S]{items: make([]N, 0, len(roots)), pruner: p}
	q.items = append(q.items, roots...)

	return q, nil
}

// Push appends item at the tail unless best dominates it.
func (q *Queue[N, S]) Push(item N, best Incumbent[S]) {
	if q.refuse(item.Bound(), best) {
		return
	}
	q.items = append(q.items, item)
}

// Pop removes the head item, skipping dominated ones.
func (q *Queue[N, S]) Pop(best Incumbent[S]) (N, bool) {
	var zero N
	for len(q.items) > 0 {
		item := q.items[0]
		q.items[0] = zero
		q.items = q.items[1:]
		if len(q.items) == 0 {
			q.items = nil // drop the consumed backing array
		}
		if q.discard(item.Bound(), best) {
			continue
		}

		return item, true
	}

	return zero, false
}

// Len returns the number of pending items.
func (q *Queue[N, S]) Len() int { return len(q.items) }
