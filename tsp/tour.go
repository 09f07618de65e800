package tsp

import (
	"cmp"
	"math"
	"slices"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// instance holds the read-only data shared by every Tour of one search.
type instance struct {
	n     int
	start int

	// dense weights: w[u*n+v]
	w []float64

	minOut []float64 // per-vertex minimal outgoing edge (excluding self)
	minIn  []float64 // per-vertex minimal incoming edge (excluding self)
	order  [][]int   // for each u: v≠u sorted by w[u→v] (index tiebreak)
}

func (in *instance) at(u, v int) float64 { return in.w[u*in.n+v] }

// precomputeMinima fills minOut/minIn. A vertex without a finite outgoing or
// incoming edge makes every cycle impossible.
func (in *instance) precomputeMinima() error {
	var (
		inf    = math.Inf(1)
		v, u   int
		mo, mi float64
	)
	in.minOut = make([]float64, in.n)
	in.minIn = make([]float64, in.n)
	for v = 0; v < in.n; v++ {
		mo, mi = inf, inf
		for u = 0; u < in.n; u++ {
			if u == v {
				continue
			}
			mo = min(mo, in.at(v, u))
			mi = min(mi, in.at(u, v))
		}
		if math.IsInf(mo, 1) || math.IsInf(mi, 1) {
			return ErrIncompleteGraph
		}
		in.minOut[v], in.minIn[v] = mo, mi
	}

	return nil
}

// buildNeighborOrder lists, for each u, every v≠u by ascending w[u→v], then v.
func (in *instance) buildNeighborOrder() {
	in.order = make([][]int, in.n)
	for u := 0; u < in.n; u++ {
		row := make([]int, 0, in.n-1)
		for v := 0; v < in.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		slices.SortFunc(row, func(a, b int) int {
			if c := cmp.Compare(in.at(u, a), in.at(u, b)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		in.order[u] = row
	}
}

// Tour is a partial cycle: a path from the start vertex. It implements
// bnb.Subproblem with float64 scores (negated costs).
type Tour struct {
	in      *instance
	path    []int  // path[0] == start
	visited []bool // vertices on path
	cost    float64
	bound   float64 // memoised -LB
}

// New validates dist and returns the root Tour anchored at start.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight,
// ErrStartOutOfRange, ErrIncompleteGraph (see package doc).
func New(dist [][]float64, start int) (*Tour, error) {
	n, w, err := flatten(dist, start)
	if err != nil {
		return nil, err
	}
	in := &instance{n: n, start: start, w: w}
	if err = in.precomputeMinima(); err != nil {
		return nil, err
	}
	in.buildNeighborOrder()

	t := &Tour{in: in, path: make([]int, 1, n+1), visited: make([]bool, n)}
	t.path[0] = start
	t.visited[start] = true
	t.bound = -round1e9(t.lowerBound())

	return t, nil
}

// lowerBound is the degree-1 relaxation described in the package doc.
// Outgoing is fixed for every visited vertex except the last one; incoming
// is fixed for every visited vertex except the start.
func (t *Tour) lowerBound() float64 {
	var (
		in            = t.in
		last          = t.path[len(t.path)-1]
		sumOut, sumIn float64
	)
	for v := 0; v < in.n; v++ {
		if t.visited[v] {
			if v == last {
				sumOut += in.minOut[v]
			}
			if v == in.start {
				sumIn += in.minIn[v]
			}
			continue
		}
		sumOut += in.minOut[v]
		sumIn += in.minIn[v]
	}

	return t.cost + max(sumOut, sumIn)
}

// extend returns a new Tour with v appended; t is left untouched.
func (t *Tour) extend(v int, c float64) *Tour {
	child := &Tour{
		in:      t.in,
		path:    append(slices.Grow(slices.Clone(t.path), 1), v),
		visited: slices.Clone(t.visited),
		cost:    t.cost + c,
	}
	child.visited[v] = true
	child.bound = -round1e9(child.lowerBound())

	return child
}

// Bound returns -LB.
func (t *Tour) Bound() float64 { return t.bound }

// BranchOrEvaluate closes a full path back to the start, or yields one child
// per unvisited vertex reachable from the last one, nearest first.
func (t *Tour) BranchOrEvaluate() bnb.Resolution[*Tour, float64] {
	in := t.in
	last := t.path[len(t.path)-1]
	if len(t.path) == in.n {
		c := in.at(last, in.start)
		if math.IsInf(c, 1) {
			return bnb.Pruned[*Tour, float64]() // missing closing edge
		}
		t.cost = round1e9(t.cost + c)
		t.path = append(t.path, in.start)

		return bnb.Solved[*Tour](-t.cost)
	}

	return bnb.Branched[float64](func(yield func(*Tour) bool) {
		var c float64
		for _, v := range in.order[last] {
			if t.visited[v] {
				continue
			}
			if c = in.at(last, v); math.IsInf(c, 1) {
				continue
			}
			if !yield(t.extend(v, c)) {
				return
			}
		}
	})
}

// Path returns a copy of the vertices visited so far; for a solved Tour it is
// the closed cycle (start repeated at the end).
func (t *Tour) Path() []int { return slices.Clone(t.path) }

// Cost returns the cost of the path so far.
func (t *Tour) Cost() float64 { return t.cost }

// Depth returns the number of vertices on the path.
func (t *Tour) Depth() int { return len(t.path) }

// Result is a shortest closed tour and its cost.
type Result struct {
	// Tour has length n+1 with Tour[0] == Tour[n] == start.
	Tour []int
	Cost float64

	Stats bnb.Stats
}

// Shortest returns a minimum-cost Hamiltonian cycle of dist starting and
// ending at start, searching with method.
//
// Errors: validation sentinels from New, ErrIncompleteGraph when no cycle
// exists, and any configuration error from bnb.Solve.
//
// Complexity: exponential in n in the worst case; O(n) per bound.
func Shortest(dist [][]float64, start int, method bnb.Method[*Tour], opts ...bnb.Option) (Result, error) {
	root, err := New(dist, start)
	if err != nil {
		return Result{}, err
	}
	res, err := bnb.Solve[*Tour, float64](root, method, opts...)
	if err != nil {
		return Result{}, err
	}
	if !res.Found {
		return Result{Stats: res.Stats}, ErrIncompleteGraph
	}

	return Result{Tour: res.Node.Path(), Cost: res.Node.Cost(), Stats: res.Stats}, nil
}
