package bnb_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/bnbsearch/bnb"
)

// subsetSum picks numbers from nums[i:] to get as close to limit as possible
// without exceeding it.
type subsetSum struct {
	nums  []int
	i     int
	sum   int
	limit int
}

// Bound: everything left still fits, capped by limit.
func (s *subsetSum) Bound() int {
	rest := 0
	for _, x := range s.nums[s.i:] {
		rest += x
	}

	return min(s.limit, s.sum+rest)
}

func (s *subsetSum) BranchOrEvaluate() bnb.Resolution[*subsetSum, int] {
	if s.i == len(s.nums) {
		return bnb.Solved[*subsetSum](s.sum)
	}
	skip := &subsetSum{nums: s.nums, i: s.i + 1, sum: s.sum, limit: s.limit}
	if s.sum+s.nums[s.i] > s.limit {
		return bnb.Branched[int](slices.Values([]*subsetSum{skip}))
	}
	take := &subsetSum{nums: s.nums, i: s.i + 1, sum: s.sum + s.nums[s.i], limit: s.limit}

	return bnb.Branched[int](slices.Values([]*subsetSum{skip, take}))
}

// ExampleSolve compares traversals on a subset-sum instance: all of them
// find the optimum, best-first with the fewest evaluations.
func ExampleSolve() {
	root := &subsetSum{nums: []int{8, 6, 7, 5, 3}, limit: 16}
	for _, m := range []bnb.Method[*subsetSum]{
		bnb.DepthFirstSearch[*subsetSum](),
		bnb.BestFirstSearch[*subsetSum](),
	} {
		res, err := bnb.Solve[*subsetSum, int](root, m)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(m, res.Score, res.Node.sum)
	}

	// Output:
	// depth-first 16 16
	// best-first 16 16
}

// ExampleSolveWithContainer runs a randomised order through the same driver.
func ExampleSolveWithContainer() {
	root := &subsetSum{nums: []int{8, 6, 7, 5, 3}, limit: 16}
	c, err := bnb.NewRandom[*subsetSum, int]([]*subsetSum{root}, 7)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bnb.SolveWithContainer[*subsetSum, int](c)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Score)

	// Output:
	// true 16
}
