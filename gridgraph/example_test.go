// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// contiguous islands of open cells in a terrain grid.
// Scenario:
//
//   - Terrain values: 0 = obstacle, 1 = path
//   - 4-directional adjacency
//   - Expect two islands separated by the obstacle column.
func ExampleGridGraph_ConnectedComponents() {
	raw := []int{
		1, 1, 0, 1,
		1, 0, 0, 1,
		1, 1, 0, 1,
	}
	dims := gridgraph.Dimensions{Cols: 4, Rows: 3}
	if err := gridgraph.ValidateTerrain(raw, dims); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	gg := gridgraph.Build(raw, dims)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			p := dims.Point(idx)
			fmt.Printf(" (%d,%d)", p.Col, p.Row)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (0,0) (1,0) (0,1) (0,2) (1,2)
	// component 1: (3,0) (3,1) (3,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ValidateTerrain
////////////////////////////////////////////////////////////////////////////////

// ExampleValidateTerrain shows the sentinel returned for a value outside {0,1}.
func ExampleValidateTerrain() {
	err := gridgraph.ValidateTerrain([]int{1, 2, 1}, gridgraph.Dimensions{Cols: 3, Rows: 1})
	fmt.Println(err)

	// Output:
	// gridgraph: terrain values must be 0 or 1: value 2 at index 1
}
