package astar

import "github.com/katalvlaran/lvpath/gridgraph"

// Estimate returns h's raw estimate between two cells.
func (h Heuristic) Estimate(from, to gridgraph.Point) uint32 {
	dc := absDiff(from.Col, to.Col)
	dr := absDiff(from.Row, to.Row)

	switch h {
	case EuclideanSquared:
		return uint32(dc*dc + dr*dr)
	default:
		return uint32(dc + dr)
	}
}

// heuristic returns n's H, computing and caching it on first use.
// HSet distinguishes a cached zero from an unset value.
func (r *runner) heuristic(n *gridgraph.Node) uint32 {
	if n.HSet {
		return n.H
	}
	n.H = r.options.Heuristic.Estimate(n.Pos, r.target)
	n.HSet = true

	return n.H
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
