package bnb_test

import (
	"slices"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// tnode is a small explicit tree used across the package tests.
type tnode struct {
	name   string
	value  int
	kids   []*tnode
	nilRes bool // BranchOrEvaluate returns a nil Resolution
}

func leaf(name string, v int) *tnode { return &tnode{name: name, value: v} }

func inner(name string, bound int, kids ...*tnode) *tnode {
	return &tnode{name: name, value: bound, kids: kids}
}

func (n *tnode) Bound() int { return n.value }

func (n *tnode) BranchOrEvaluate() bnb.Resolution[*tnode, int] {
	switch {
	case n.nilRes:
		return nil
	case len(n.kids) == 0:
		return bnb.Solved[*tnode](n.value)
	default:
		return bnb.Branched[int](slices.Values(n.kids))
	}
}

// sample is the reference tree; leaf5 is the optimum.
func sample() *tnode {
	return inner("root", 8,
		inner("p1-23", 5,
			leaf("leaf1", 1),
			inner("p23", 4, leaf("leaf2", 2), leaf("leaf3", 3)),
		),
		inner("p0-45", 7,
			leaf("leaf0", 0),
			inner("p45", 6, leaf("leaf4", 4), leaf("leaf5", 5)),
		),
	)
}

// pruneLog records prune hook calls.
type pruneLog struct {
	kinds  []bnb.PruneKind
	counts []int
}

func (p *pruneLog) hook(kind bnb.PruneKind, count int) {
	p.kinds = append(p.kinds, kind)
	p.counts = append(p.counts, count)
}

// recorder is an Observer that keeps every event.
type recorder struct {
	pops, branches, children, solves, improved int
	prunes                                     map[bnb.PruneKind]int
	finished                                   []bnb.Stats
}

func newRecorder() *recorder { return &recorder{prunes: map[bnb.PruneKind]int{}} }

func (r *recorder) OnPop() { r.pops++ }
func (r *recorder) OnBranch(children int) {
	r.branches++
	r.children += children
}
func (r *recorder) OnSolve(improved bool) {
	r.solves++
	if improved {
		r.improved++
	}
}
func (r *recorder) OnPrune(kind bnb.PruneKind, count int) { r.prunes[kind] += count }
func (r *recorder) OnFinish(stats bnb.Stats)               { r.finished = append(r.finished, stats) }
