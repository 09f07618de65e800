// Package tsp finds shortest Hamiltonian cycles with the bnb engine.
//
// What:
//
//   - Shortest: exact search over a dense distance matrix ([][]float64) with
//     any bnb traversal. Symmetric TSP and asymmetric ATSP are both handled.
//   - HeldKarp: exact O(n²·2ⁿ) dynamic programming, for small instances and
//     as an independent check of Shortest.
//
// Search:
//
//	A Tour is a path from the start vertex. Its children extend the path by
//	one unvisited vertex, produced lazily in ascending w[last→v] (index
//	tiebreak). A full path closes back to the start and is a solution.
//
// Bound (degree-1 relaxation):
//
//	In a Hamiltonian cycle every vertex has out-degree 1 and in-degree 1.
//	For every vertex whose outgoing edge is not yet fixed, add minOut[v];
//	for every vertex whose incoming edge is not yet fixed, add minIn[v]:
//	LB = costSoFar + max(Σ minOut, Σ minIn), admissible (≤ OPT).
//
// Scores:
//
//	bnb maximises, so a tour scores -cost and a path is bounded by -LB.
//	Costs are rounded to 1e-9 to keep results stable across platforms.
//
// Input policy:
//
//   - dist is n×n with n ≥ 2; the diagonal is ignored.
//   - +Inf marks a missing edge; NaN and negative weights are rejected.
//   - Every vertex needs a finite outgoing and a finite incoming edge.
//
// Errors:
//
//   - ErrNonSquare          dist is not n×n, or n < 2
//   - ErrDimensionMismatch  NaN weight, or malformed tour
//   - ErrNegativeWeight     negative weight
//   - ErrStartOutOfRange    start ∉ [0, n)
//   - ErrIncompleteGraph    a vertex is unreachable, or no cycle exists
package tsp
