// Package bnbsearch is a generic branch-and-bound and backtracking toolkit:
// describe a problem as a tree of subproblems with admissible bounds, pick a
// traversal, and get the best leaf back.
//
// What is in the box?
//
//	bnb/        the engine: Subproblem contract, Stack / Queue / PriorityQueue
//	            / Random containers, Solve and SolveWithContainer, pruning
//	            policies, Observer hooks, TOML Config
//	bnbprom/    Prometheus Observer (event counters, run histograms)
//	graphwalk/  explicit trees with a visit Trace, for studying traversals
//	knapsack/   0/1 knapsack with a ratio-greedy bound
//	dpll/       CNF satisfiability by DPLL with unit propagation, DIMACS input
//	tsp/        shortest Hamiltonian cycles with a degree-1 relaxation bound,
//	            plus Held–Karp
//
// Traversals:
//
//	depth-first    lowest memory, finds leaves fast
//	breadth-first  layer by layer
//	best-first     greatest bound first, stops once the best bound is beaten
//	custom         caller comparator; may stop early if it refines the bound
//
// Quick example (see knapsack for the full client):
//
//	items := []knapsack.Item{{Weight: 12, Price: 24}, {Weight: 7, Price: 13}}
//	packed, value, err := knapsack.Pack(26, items, bnb.BestFirstSearch[*knapsack.Subproblem]())
//
//	go get github.com/katalvlaran/bnbsearch
package bnbsearch
