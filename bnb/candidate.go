package bnb

import (
	"cmp"
	"container/heap"
)

// Compile time check to ensure candidateHeap satisfies the heap interface.
var _ heap.Interface = (*candidateHeap[*struct{}, int])(nil)

// candidate pairs a node with its memoised bound while it waits in a
// priority container. seq is the insertion counter used to break ties.
type candidate[N any, S cmp.Ordered] struct {
	node  N
	bound S
	seq   uint64
}

// precedes reports whether a must be popped before b.
type precedes[N any, S cmp.Ordered] func(a, b *candidate[N, S]) bool

// byBound orders candidates by bound, greatest first. Equal bounds are popped
// newest first, which keeps best-first search diving instead of widening.
func byBound[N any, S cmp.Ordered]() precedes[N, S] {
	return func(a, b *candidate[N, S]) bool {
		if a.bound != b.bound {
			return a.bound > b.bound
		}

		return a.seq > b.seq
	}
}

// byComparator orders candidates by compare, greatest first, with the same
// newest-first tie-break as byBound.
func byComparator[N any, S cmp.Ordered](compare func(a, b N) int) precedes[N, S] {
	return func(a, b *candidate[N, S]) bool {
		if c := compare(a.node, b.node); c != 0 {
			return c > 0
		}

		return a.seq > b.seq
	}
}

// candidateHeap implements heap.Interface as a max-heap under before.
type candidateHeap[N any, S cmp.Ordered] struct {
	items  []candidate[N, S]
	before precedes[N, S]
}

// Len returns the number of candidates in the heap.
func (h *candidateHeap[N, S]) Len() int { return len(h.items) }

// Less reports whether the candidate at i must be popped before the one at j.
func (h *candidateHeap[N, S]) Less(i, j int) bool { return h.before(&h.items[i], &h.items[j]) }

// Swap swaps the candidates with indexes i and j.
func (h *candidateHeap[N, S]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push adds x, which must be a candidate[N, S].
func (h *candidateHeap[N, S]) Push(x any) {
	h.items = append(h.items, x.(candidate[N, S]))
}

// Pop removes and returns the last candidate.
func (h *candidateHeap[N, S]) Pop() any {
	old := h.items
	n := len(old)
	c := old[n-1]
	old[n-1] = candidate[N, S]{} // avoid retaining the node
	h.items = old[:n-1]

	return c
}

// reset drops every candidate and returns how many there were.
func (h *candidateHeap[N, S]) reset() int {
	n := len(h.items)
	clear(h.items)
	h.items = h.items[:0]

	return n
}
