package bnb

import (
	"cmp"
	"math/rand"
)

// defaultRandomSeed is the fixed seed used when callers pass seed == 0.
const defaultRandomSeed int64 = 1

// Random is a container that evaluates a uniformly chosen pending item on
// every Pop. It is not one of the built-in traversals; run it through
// SolveWithContainer. The search stays exhaustive, only the order changes,
// and the same seed reproduces the same order.
//
// math/rand.Rand is not goroutine-safe; neither is Random.
type Random[N Subproblem[N, S], S cmp.Ordered] struct {
	items []N
	rng   *rand.Rand
	pruner[S]
}

// NewRandom returns a Random container seeded with roots. seed == 0 selects
// a fixed default seed. It honours WithPruning and WithPruneHook.
func NewRandom[N Subproblem[N, S], S cmp.Ordered](roots []N, seed int64, opts ...Option) (*Random[N, S], error) {
	p, err := newPruner[S](opts)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = defaultRandomSeed
	}
	r := &Random[N, S]{
		items:  make([]N, 0, len(roots)),
		rng:    rand.New(rand.NewSource(seed)),
		pruner: p,
	}
	r.items = append(r.items, roots...)

	return r, nil
}

// Push adds item unless best dominates it.
func (r *Random[N, S]) Push(item N, best Incumbent[S]) {
	if r.refuse(item.Bound(), best) {
		return
	}
	r.items = append(r.items, item)
}

// Pop removes a random item, skipping dominated ones.
func (r *Random[N, S]) Pop(best Incumbent[S]) (N, bool) {
	var zero N
	for len(r.items) > 0 {
		last := len(r.items) - 1
		i := r.rng.Intn(len(r.items))
		item := r.items[i]
		r.items[i] = r.items[last] // swap-remove, O(1)
		r.items[last] = zero
		r.items = r.items[:last]
		if r.discard(item.Bound(), best) {
			continue
		}

		return item, true
	}

	return zero, false
}

// Len returns the number of pending items.
func (r *Random[N, S]) Len() int { return len(r.items) }
