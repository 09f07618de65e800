// Package knapsack solves the 0/1 knapsack problem with the bnb engine.
//
// Items are considered in descending price/weight ratio. Every subproblem
// decides the next item: include it (a deep copy of the parent) or drop it
// (the parent itself, moved into the child, since the engine discards a node
// once it has branched).
//
// Bound: fill the remaining capacity greedily by ratio; the first item that
// does not fit strictly is counted at full price, and weightless items are
// always counted. That is at least the fractional (LP) relaxation, hence
// admissible.
//
// Complexity: exponential in the worst case; O(n) per Bound, O(n) per copy.
package knapsack

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// Item is a candidate for the knapsack.
type Item struct {
	Weight uint64
	Price  uint64
}

// Subproblem is a partially packed knapsack.
type Subproblem struct {
	value        uint64 // price of the items packed so far
	capacityLeft uint64
	left         []Item // undecided items, ascending ratio (best is last)
	in           []Item // packed items, only kept to report the answer
}

// New returns the root subproblem: an empty knapsack of the given capacity
// with every item undecided. items is copied. Items heavier than capacity
// are never considered.
func New(capacity uint64, items []Item) *Subproblem {
	left := slices.Clone(items)
	slices.SortStableFunc(left, compareRatio)
	k := &Subproblem{capacityLeft: capacity, left: left}
	k.dropTooHeavy()

	return k
}

// compareRatio orders items by ascending price/weight without division:
// a.Price/a.Weight < b.Price/b.Weight ⇔ a.Price·b.Weight < b.Price·a.Weight.
// Products are taken on 128 bits, so no input overflows. Weightless items
// rank above all others, by price.
func compareRatio(a, b Item) int {
	switch {
	case a.Weight == 0 && b.Weight == 0:
		return cmp.Compare(a.Price, b.Price)
	case a.Weight == 0:
		return 1
	case b.Weight == 0:
		return -1
	}
	ah, al := bits.Mul64(a.Price, b.Weight)
	bh, bl := bits.Mul64(b.Price, a.Weight)
	switch {
	case ah != bh:
		if ah < bh {
			return -1
		}
		return 1
	case al != bl:
		if al < bl {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// dropTooHeavy keeps the invariant that the next item, if any, fits.
func (k *Subproblem) dropTooHeavy() {
	for n := len(k.left); n > 0 && k.left[n-1].Weight > k.capacityLeft; n = len(k.left) {
		k.left = k.left[:n-1]
	}
}

func (k *Subproblem) includeNext() {
	last := len(k.left) - 1
	item := k.left[last]
	k.value += item.Price
	k.capacityLeft -= item.Weight
	k.in = append(k.in, item)
	k.left = k.left[:last]
	k.dropTooHeavy()
}

func (k *Subproblem) dropNext() {
	k.left = k.left[:len(k.left)-1]
	k.dropTooHeavy()
}

// clone deep-copies k; the copies share no backing arrays.
func (k *Subproblem) clone() *Subproblem {
	return &Subproblem{
		value:        k.value,
		capacityLeft: k.capacityLeft,
		left:         slices.Clone(k.left),
		in:           slices.Clone(k.in),
	}
}

// Value returns the price of the packed items.
func (k *Subproblem) Value() uint64 { return k.value }

// CapacityLeft returns the unused capacity.
func (k *Subproblem) CapacityLeft() uint64 { return k.capacityLeft }

// Items returns a copy of the packed items in packing order.
func (k *Subproblem) Items() []Item { return slices.Clone(k.in) }

// Bound returns the greedy upper bound described in the package doc.
func (k *Subproblem) Bound() uint64 {
	val, capacity := k.value, k.capacityLeft
	var item Item
	for i := len(k.left) - 1; i >= 0; i-- {
		item = k.left[i]
		if item.Weight > k.capacityLeft {
			continue // can never be packed from here
		}
		if item.Weight > 0 && item.Weight >= capacity {
			return val + item.Price // overflow the knapsack with this one
		}
		val += item.Price
		capacity -= item.Weight
	}

	return val
}

// BranchOrEvaluate solves a knapsack with no undecided item left, otherwise
// branches on the best remaining item: include it, then drop it.
func (k *Subproblem) BranchOrEvaluate() bnb.Resolution[*Subproblem, uint64] {
	if len(k.left) == 0 {
		return bnb.Solved[*Subproblem](k.value)
	}
	include := k.clone()
	include.includeNext()
	exclude := k // reuse the parent's storage
	exclude.dropNext()

	return bnb.Branched[uint64](slices.Values([]*Subproblem{include, exclude}))
}

// Pack returns the most valuable subset of items fitting capacity and its
// total price, searching with method. An empty item list packs nothing.
func Pack(capacity uint64, items []Item, method bnb.Method[*Subproblem], opts ...bnb.Option) ([]Item, uint64, error) {
	res, err := bnb.Solve[*Subproblem, uint64](New(capacity, items), method, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Found {
		return nil, 0, nil // unreachable: the root always has a feasible leaf
	}

	return res.Node.Items(), res.Score, nil
}
