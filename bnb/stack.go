package bnb

import "cmp"

// Stack is the LIFO container behind depth-first search. Children of a node
// are evaluated before its siblings; among siblings the last produced child
// is evaluated first.
//
// Memory is proportional to depth × branching factor for typical bounds,
// far less than breadth-first or best-first search.
type Stack[N Subproblem[N, S], S cmp.Ordered] struct {
	items []N
	pruner[S]
}

// NewStack returns a Stack seeded with roots. It honours WithPruning and
// WithPruneHook; other options are ignored.
func NewStack[N Subproblem[N, S], S cmp.Ordered](roots []N, opts ...Option) (*Stack[N, S], error) {
	p, err := newPruner[S](opts)
	if err != nil {
		return nil, err
	}
	s := &Stack[N, S]{items: make([]N, 0, len(roots)), pruner: p}
	s.items = append(s.items, roots...)

	return s, nil
}

// Push adds item on top unless best dominates it.
func (s *Stack[N, S]) Push(item N, best Incumbent[S]) {
	if s.refuse(item.Bound(), best) {
		return
	}
	s.items = append(s.items, item)
}

// Pop removes the top item, skipping dominated ones.
func (s *Stack[N, S]) Pop(best Incumbent[S]) (N, bool) {
	var zero N
	for len(s.items) > 0 {
		last := len(s.items) - 1
		item := s.items[last]
		s.items[last] = zero // release the node to the caller
		s.items = s.items[:last]
		if s.discard(item.Bound(), best) {
			continue
		}

		return item, true
	}

	return zero, false
}

// Len returns the number of pending items.
func (s *Stack[N, S]) Len() int { return len(s.items) }
