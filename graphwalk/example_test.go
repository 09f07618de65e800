package graphwalk_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bnbsearch/bnb"
	"github.com/katalvlaran/bnbsearch/graphwalk"
)

// ExampleSolve walks the sample tree best-first. Once leaf5 is found, the
// best pending bound (p1-23, 5) no longer beats it and the search stops.
func ExampleSolve() {
	trace := &graphwalk.Trace{}
	res, err := graphwalk.Solve(graphwalk.Sample(), trace, bnb.BestFirstSearch[*graphwalk.Step]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(trace.Names(), " "))
	fmt.Println(res.Node.Node().Name, res.Score, res.Stats.EarlyStopped)

	// Output:
	// root p0-45 p45 leaf5
	// leaf5 5 true
}
