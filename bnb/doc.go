// Package bnb implements a generic branch-and-bound / backtracking search
// engine over client-defined subproblem trees.
//
// What:
//
//   - A client node type implements Subproblem: BranchOrEvaluate splits the
//     node into lazily produced children (Branch) or resolves it to a leaf
//     score (Solution); Bound returns an admissible upper estimate of every
//     score reachable below the node.
//   - The engine keeps the best solution found so far (the incumbent) and
//     skips any pending node whose bound cannot beat it.
//   - Solve walks the tree with one of four traversals:
//   - DepthFirst    LIFO Stack, lowest memory
//   - BreadthFirst  FIFO Queue, layer by layer
//   - BestFirst     PriorityQueue by bound, stops when the best bound is beaten
//   - Custom        PriorityQueue by a caller comparator; stops early only when
//     the comparator is declared to refine the bound order
//   - SolveWithContainer runs the same driver over any Container, for
//     strategies outside that set (see Random).
//
// Pruning:
//
//	eager  (PruneOnPush)  item refused when pushed if bound <= incumbent
//	lazy   (PruneOnPop)   item discarded when popped if bound <= incumbent
//
// Built-in containers apply both by default; WithPruning(PruneNone) turns the
// engine into exhaustive enumeration, which is handy to validate a bound.
//
// Scores:
//
//	Any cmp.Ordered type; greater is better. A solution replaces the
//	incumbent only when strictly greater, so on ties the first solution found
//	wins and the answer may differ between traversals (the score does not).
//
// Errors:
//
//   - ErrNilComparator      Custom traversal without a comparator
//   - ErrUnknownTraversal   Traversal outside the closed set
//   - ErrNilContainer       SolveWithContainer(nil)
//   - ErrOptionViolation    invalid functional option
//   - ErrInvalidConfig      Config that cannot be decoded or applied
//
// Finding no solution is not an error: Result.Found is false.
//
// Concurrency:
//
//	A run is single-threaded and owns its container and incumbent; separate
//	runs share nothing and may execute in parallel goroutines.
//
// Example:
//
//	res, err := bnb.Solve[*knapsack.Subproblem, uint64](root, bnb.BestFirstSearch[*knapsack.Subproblem]())
//	if err != nil { ... }
//	if res.Found { fmt.Println(res.Score) }
package bnb
