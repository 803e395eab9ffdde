// Package gridgraph defines core types for the grid node store: terrain
// classes, the area-cost table, grid geometry and the per-cell search node.
package gridgraph

// Terrain classifies a single grid cell.
// The numeric values match the raw codes used in terrain input.
type Terrain uint8

const (
	// Obstacle cells are never entered.
	Obstacle Terrain = iota
	// Path is open terrain with no area penalty.
	Path
	// Water is traversable terrain carrying WaterAreaCost.
	// Raw input validation does not currently accept it.
	Water

	terrainCount
)

// String returns a lowercase name for t.
func (t Terrain) String() string {
	switch t {
	case Obstacle:
		return "obstacle"
	case Path:
		return "path"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Raw terrain codes accepted by ValidateTerrain.
const (
	RawObstacle = int(Obstacle)
	RawPath     = int(Path)
)

// Static area costs per terrain class.
const (
	PathAreaCost  uint32 = 0
	WaterAreaCost uint32 = 10
)

// AreaCost returns the static traversal penalty for t.
// Obstacles are never expanded, so their cost is irrelevant and reported as 0.
func AreaCost(t Terrain) uint32 {
	switch t {
	case Path:
		return PathAreaCost
	case Water:
		return WaterAreaCost
	default:
		return 0
	}
}

// ClassifyTerrain maps a raw cell value onto a Terrain.
// Values outside the known classes fall back to Path, the node default;
// callers are expected to have run ValidateTerrain first.
func ClassifyTerrain(raw int) Terrain {
	if raw >= 0 && raw < int(terrainCount) {
		return Terrain(raw)
	}
	return Path
}

// Point addresses a cell by zero-based column and row.
type Point struct {
	Col int `yaml:"col" json:"col"`
	Row int `yaml:"row" json:"row"`
}

// Dimensions holds the grid size in columns and rows.
type Dimensions struct {
	Cols, Rows int
}

// Len returns the number of cells, Cols*Rows.
func (d Dimensions) Len() int {
	return d.Cols * d.Rows
}

// Holds reports whether exactly n cells fill d. It divides instead of
// multiplying, so dimensions whose product overflows int never match.
// Complexity: O(1).
func (d Dimensions) Holds(n int) bool {
	if d.Cols < 0 || d.Rows < 0 {
		return false
	}
	if d.Cols == 0 || d.Rows == 0 {
		return n == 0
	}

	return n%d.Cols == 0 && n/d.Cols == d.Rows
}

// Contains reports whether p lies within [0,Cols)×[0,Rows).
// Complexity: O(1).
func (d Dimensions) Contains(p Point) bool {
	return p.Col >= 0 && p.Col < d.Cols && p.Row >= 0 && p.Row < d.Rows
}

// Index maps p to its row-major linear index: Row*Cols + Col.
// Complexity: O(1).
func (d Dimensions) Index(p Point) int {
	return p.Row*d.Cols + p.Col
}

// Point converts a row-major linear index back to (col,row).
// Complexity: O(1).
func (d Dimensions) Point(idx int) Point {
	return Point{Col: idx % d.Cols, Row: idx / d.Cols}
}

// NoParent marks a node without a predecessor.
const NoParent = -1

// Node is the per-cell search record. A fresh arena of nodes is built for
// every search and discarded when it ends.
//
// Costs:
//   - G is the accumulated step cost from the start.
//   - H is the heuristic estimate to the target, valid only when HSet is true.
//   - Area is the static terrain penalty assigned at build time.
//   - Total is G + H + Area and must be refreshed via UpdateTotal after any
//     change to G or H.
//
// InFrontier tracks frontier membership; Visited marks finalized nodes.
// Parent is an index into the same arena, or NoParent.
type Node struct {
	Pos     Point
	Index   int
	Terrain Terrain

	G     uint32
	H     uint32
	Area  uint32
	Total uint32

	HSet       bool
	InFrontier bool
	Visited    bool
	Parent     int
}

// UpdateTotal recomputes Total from G, H and Area.
func (n *Node) UpdateTotal() {
	n.Total = n.G + n.H + n.Area
}

// IsObstacle reports whether the node can never be entered.
func (n *Node) IsObstacle() bool {
	return n.Terrain == Obstacle
}

// GridGraph is the node arena for one search: one Node per cell in row-major
// order, addressed by linear index.
type GridGraph struct {
	Dims  Dimensions
	Nodes []Node
}
