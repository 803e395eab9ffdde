package gridgraph

import "errors"

var (
	// ErrDimensionMismatch indicates the terrain length differs from Cols*Rows
	// or a dimension is negative.
	ErrDimensionMismatch = errors.New("gridgraph: map dimensions must match the terrain size")
	// ErrEmptyTerrain indicates the terrain holds no cells.
	ErrEmptyTerrain = errors.New("gridgraph: terrain has no cells")
	// ErrInvalidTerrainValue indicates a raw value other than 0 or 1.
	ErrInvalidTerrainValue = errors.New("gridgraph: terrain values must be 0 or 1")
	// ErrNoTraversableTerrain indicates every cell is an obstacle.
	ErrNoTraversableTerrain = errors.New("gridgraph: terrain has no traversable cells")
)

// ErrBridgeEndpoint indicates a Bridge endpoint that is out of bounds or an obstacle.
var ErrBridgeEndpoint = errors.New("gridgraph: bridge endpoints must be traversable cells")
