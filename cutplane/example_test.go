package cutplane_test

import (
	"fmt"

	"github.com/katalvlaran/clqo/cutplane"
)

// ExampleSolve maximizes a ferromagnetic triangle: every pair of variables
// prefers to agree, so any aligned assignment attains the optimum 3 and the
// solver certifies it without a single cut.
func ExampleSolve() {
	p, err := cutplane.NewDense([][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}, 0)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	res, err := cutplane.Solve(p, cutplane.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Printf("exact=%v score=%.0f cuts=%d\n", res.Exact, res.Score, res.CutsApplied)
	fmt.Printf("assignment=%v\n", res.Assignment)

	// Output:
	// exact=true score=3 cuts=0
	// assignment=[1 1 1]
}
