// File: astar/example_test.go
package astar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindPath
////////////////////////////////////////////////////////////////////////////////

// ExampleFindPath routes across the 4×7 demo map from (0,0) to (2,6).
// Scenario:
//
//	1 1 1 1
//	1 1 0 1
//	0 1 1 1
//	0 1 1 0
//	0 1 1 1
//	1 1 0 1
//	1 1 1 1
//
// The Manhattan heuristic walks down column 1 and steps right at the bottom.
func ExampleFindPath() {
	terrain := []int{
		1, 1, 1, 1,
		1, 1, 0, 1,
		0, 1, 1, 1,
		0, 1, 1, 0,
		0, 1, 1, 1,
		1, 1, 0, 1,
		1, 1, 1, 1,
	}
	dims := gridgraph.Dimensions{Cols: 4, Rows: 7}

	res, err := astar.FindPath(gridgraph.Point{Col: 0, Row: 0}, gridgraph.Point{Col: 2, Row: 6}, terrain, dims)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	fmt.Println("steps:", res.Cost, "expanded:", res.Expanded)

	// Output:
	// path: [1 5 9 13 17 21 25 26]
	// steps: 8 expanded: 13
}

////////////////////////////////////////////////////////////////////////////////
// Example: unimplemented strategy
////////////////////////////////////////////////////////////////////////////////

// ExampleWithStrategy shows that named-but-unimplemented strategies fail loudly.
func ExampleWithStrategy() {
	_, err := astar.FindPath(gridgraph.Point{}, gridgraph.Point{Col: 1}, []int{1, 1},
		gridgraph.Dimensions{Cols: 2, Rows: 1}, astar.WithStrategy(astar.BreadthFirst))
	fmt.Println(errors.Is(err, astar.ErrStrategyUnimplemented))
	fmt.Println(err)

	// Output:
	// true
	// astar: search strategy not implemented: breadth-first
}
