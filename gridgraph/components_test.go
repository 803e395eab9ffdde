// File: gridgraph/components_test.go
package gridgraph

import (
	"reflect"
	"sort"
	"testing"
)

// TestConnectedComponents_Simple tests ConnectedComponents on a 4×3 grid.
//
// Grid (1 = path, 0 = obstacle):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2.
func TestConnectedComponents_Simple(t *testing.T) {
	raw := []int{
		0, 1, 1, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
	}
	gg := Build(raw, Dimensions{Cols: 4, Rows: 3})

	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("got %d components; want 2", len(comps))
	}

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	want := []int{2, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestConnectedComponents_NoDiagonals checks that corner-touching cells stay apart.
//
// Grid:
//
//	1 0
//	0 1
func TestConnectedComponents_NoDiagonals(t *testing.T) {
	gg := Build([]int{1, 0, 0, 1}, Dimensions{Cols: 2, Rows: 2})
	comps := gg.ConnectedComponents()
	want := [][]int{{0}, {3}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestConnectedComponents_AllObstacles returns no components.
func TestConnectedComponents_AllObstacles(t *testing.T) {
	gg := Build([]int{0, 0, 0, 0}, Dimensions{Cols: 2, Rows: 2})
	if comps := gg.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}

// TestReachable covers same island, split islands, obstacles and out-of-bounds.
func TestReachable(t *testing.T) {
	raw := []int{
		1, 1, 0, 1,
		0, 1, 0, 1,
		1, 1, 0, 1,
	}
	dims := Dimensions{Cols: 4, Rows: 3}
	gg := Build(raw, dims)

	cases := []struct {
		name string
		a, b Point
		want bool
	}{
		{"SameIsland", Point{0, 0}, Point{0, 2}, true},
		{"Self", Point{1, 1}, Point{1, 1}, true},
		{"AcrossWall", Point{0, 0}, Point{3, 0}, false},
		{"ObstacleEndpoint", Point{0, 0}, Point{2, 0}, false},
		{"OutOfBounds", Point{0, 0}, Point{4, 0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gg.Reachable(tc.a, tc.b); got != tc.want {
				t.Errorf("Reachable(%v, %v) = %v; want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
