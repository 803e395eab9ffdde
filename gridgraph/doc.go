// Package gridgraph is the node store behind grid path searches.
//
// What:
//
//   - Terrain input is a flat, row-major []int paired with Dimensions{Cols, Rows}.
//     Raw value 0 is an obstacle, 1 is open path.
//   - ValidateTerrain rejects malformed input before any search work.
//   - Build turns validated terrain into a GridGraph: an arena of Node values,
//     one per cell, each carrying position, linear index, terrain class and
//     static area cost. Search state (costs, flags, parent index) lives in the
//     same nodes and is owned by a single search.
//   - Neighbors enumerates 4-connected cells in the fixed order right, down,
//     left, up.
//   - ConnectedComponents / Reachable label islands of traversable cells.
//
// Area costs:
//
//   - Path:  0
//   - Water: 10 (a cost-model class; raw input cannot produce it today)
//
// Complexity:
//
//   - ValidateTerrain, Build:          O(W×H) time and memory.
//   - Neighbors:                       O(1).
//   - ConnectedComponents, Reachable:  O(W×H) time and memory.
//
// Errors:
//
//   - ErrDimensionMismatch: terrain length differs from Cols*Rows.
//   - ErrEmptyTerrain: no cells.
//   - ErrInvalidTerrainValue: a value other than 0 or 1.
//   - ErrNoTraversableTerrain: every cell is an obstacle.
package gridgraph
