package tsp

import "math"

// maxHeldKarp caps HeldKarp: its tables hold n·2ⁿ entries.
const maxHeldKarp = 20

// HeldKarp solves the instance exactly by dynamic programming over subsets.
//
// dp[mask][j] is the cheapest path that leaves start, visits exactly the
// vertices of mask (which contains start) and ends at j. The cycle is closed
// by the cheapest return j→start.
//
// It applies the same input policy as Shortest and additionally returns
// ErrDimensionMismatch for n > 20.
//
// Time: O(n²·2ⁿ). Memory: O(n·2ⁿ).
func HeldKarp(dist [][]float64, start int) (Result, error) {
	n, w, err := flatten(dist, start)
	if err != nil {
		return Result{}, err
	}
	if n > maxHeldKarp {
		return Result{}, ErrDimensionMismatch
	}

	var (
		inf       = math.Inf(1)
		full      = 1<<n - 1
		startMask = 1 << start
		dp        = make([][]float64, 1<<n)
		parent    = make([][]int, 1<<n)
	)
	for mask := 0; mask <= full; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := 0; j < n; j++ {
			dp[mask][j] = inf
			parent[mask][j] = -1
		}
	}
	dp[startMask][start] = 0

	for mask := 0; mask <= full; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev][k], 1) {
					continue
				}
				c := w[k*n+j]
				if math.IsInf(c, 1) {
					continue
				}
				if cand := dp[prev][k] + c; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	best, last := inf, -1
	for j := 0; j < n; j++ {
		if j == start {
			continue
		}
		c := w[j*n+start]
		if math.IsInf(c, 1) {
			continue
		}
		if total := dp[full][j] + c; total < best {
			best, last = total, j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	tour[0], tour[n] = start, start
	mask, j := full, last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}

	return Result{Tour: tour, Cost: round1e9(best)}, nil
}
