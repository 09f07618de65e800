package tsp

import (
	"errors"
	"math"
)

// Sentinel errors. Messages are prefixed with "tsp:"; match with errors.Is.
var (
	// ErrNonSquare signals a distance matrix that is not n×n with n ≥ 2.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch signals a NaN weight or a malformed tour.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight signals a negative edge weight.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrStartOutOfRange signals a start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIncompleteGraph signals that no Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")
)

// roundScale sets the precision of reported costs (1e-9).
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// flatten validates dist and copies it into a dense row-major buffer.
// Off-diagonal entries must be non-negative or +Inf; the diagonal is ignored.
func flatten(dist [][]float64, start int) (int, []float64, error) {
	n := len(dist)
	if n < 2 {
		return 0, nil, ErrNonSquare
	}
	var (
		i, j int
		x    float64
		w    = make([]float64, n*n)
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			x = dist[i][j]
			if math.IsNaN(x) {
				return 0, nil, ErrDimensionMismatch
			}
			if x < 0 {
				return 0, nil, ErrNegativeWeight
			}
			w[i*n+j] = x
		}
	}
	if start < 0 || start >= n {
		return 0, nil, ErrStartOutOfRange
	}

	return n, w, nil
}

// ValidateTour checks that tour is a closed Hamiltonian cycle over n vertices
// anchored at start: len(tour) == n+1, tour[0] == tour[n] == start, and
// every vertex appears exactly once in tour[0:n].
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along the edges tour[i]→tour[i+1].
// A missing edge yields ErrIncompleteGraph.
func TourCost(dist [][]float64, tour []int) (float64, error) {
	n := len(dist)
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= len(dist[u]) {
			return 0, ErrDimensionMismatch
		}
		x := dist[u][v]
		switch {
		case math.IsNaN(x):
			return 0, ErrDimensionMismatch
		case math.IsInf(x, 1):
			return 0, ErrIncompleteGraph
		case x < 0:
			return 0, ErrNegativeWeight
		}
		sum += x
	}

	return round1e9(sum), nil
}
