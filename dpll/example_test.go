package dpll_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bnbsearch/bnb"
	"github.com/katalvlaran/bnbsearch/dpll"
)

// ExampleParseDIMACS reads a formula and decides it depth-first.
func ExampleParseDIMACS() {
	f, err := dpll.ParseDIMACS(strings.NewReader("p cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	model, sat, err := dpll.Solve(f.NumVars, f.Clauses, bnb.DepthFirstSearch[*dpll.Node]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sat, model)

	// Output:
	// true [true true true]
}
