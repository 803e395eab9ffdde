// Package gridgraph provides the node store used by grid searches. It supports:
//
//   - Validation of flat, row-major terrain input
//   - Construction of a node arena, one node per cell
//   - Four-connected neighbour enumeration in a fixed order
//   - Identification of connected components of traversable cells
package gridgraph

import "fmt"

// neighborOffsets lists 4-connected steps in expansion order: right, down, left, up.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// ValidateTerrain checks raw terrain against dims.
// Checks run in order and the first failure is returned:
//  1. len(raw) must equal Cols*Rows and neither dimension may be negative (ErrDimensionMismatch).
//  2. the terrain must be non-empty (ErrEmptyTerrain).
//  3. every value must be RawObstacle or RawPath (ErrInvalidTerrainValue).
//  4. at least one value must be RawPath (ErrNoTraversableTerrain).
//
// Complexity: O(W×H).
func ValidateTerrain(raw []int, dims Dimensions) error {
	if !dims.Holds(len(raw)) {
		return fmt.Errorf("%w: %d×%d grid, %d values", ErrDimensionMismatch, dims.Cols, dims.Rows, len(raw))
	}
	if len(raw) == 0 {
		return ErrEmptyTerrain
	}

	traversable := false
	for i, v := range raw {
		if v != RawObstacle && v != RawPath {
			return fmt.Errorf("%w: value %d at index %d", ErrInvalidTerrainValue, v, i)
		}
		if v == RawPath {
			traversable = true
		}
	}
	if !traversable {
		return ErrNoTraversableTerrain
	}

	return nil
}

// Build allocates a node for every cell of raw in row-major order, deriving
// position and index, classifying terrain and assigning area cost.
// raw is assumed to have passed ValidateTerrain.
// Complexity: O(W×H) time and memory.
func Build(raw []int, dims Dimensions) *GridGraph {
	nodes := make([]Node, dims.Len())
	for i := range nodes {
		t := ClassifyTerrain(raw[i])
		nodes[i] = Node{
			Pos:     dims.Point(i),
			Index:   i,
			Terrain: t,
			Area:    AreaCost(t),
			Parent:  NoParent,
		}
	}

	return &GridGraph{Dims: dims, Nodes: nodes}
}

// InBounds reports whether (col,row) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(col, row int) bool {
	return gg.Dims.Contains(Point{Col: col, Row: row})
}

// Neighbors appends the in-bounds 4-connected neighbours of node idx to buf,
// in the order right, down, left, up, and returns the extended slice.
// Obstacles are included; filtering is the caller's job.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(idx int, buf []int) []int {
	p := gg.Nodes[idx].Pos
	for _, d := range neighborOffsets {
		c, r := p.Col+d[0], p.Row+d[1]
		if !gg.InBounds(c, r) {
			continue
		}
		buf = append(buf, gg.Dims.Index(Point{Col: c, Row: r}))
	}

	return buf
}

// Node returns the node at p. p must be in bounds.
func (gg *GridGraph) Node(p Point) *Node {
	return &gg.Nodes[gg.Dims.Index(p)]
}
