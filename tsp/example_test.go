package tsp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bnbsearch/bnb"
	"github.com/katalvlaran/bnbsearch/tsp"
)

// ExampleShortest solves a small asymmetric instance best-first.
// +Inf marks a missing edge.
func ExampleShortest() {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 2, 9, inf},
		{1, 0, 6, 4},
		{inf, 7, 0, 8},
		{6, 3, inf, 0},
	}
	res, err := tsp.Shortest(dist, 0, bnb.BestFirstSearch[*tsp.Tour]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour, res.Cost)

	// Output:
	// [0 2 3 1 0] 21
}
