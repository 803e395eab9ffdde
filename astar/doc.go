// Package astar finds shortest routes on uniform 2D grids with A* search.
//
// Overview:
//
//   - Terrain is a flat, row-major []int (0 = obstacle, 1 = path) with
//     gridgraph.Dimensions. Start and target are gridgraph.Point values.
//   - Movement is 4-connected. Each step costs 1.
//   - Each node ranks by Total = G + H + Area, where Area is the static
//     terrain penalty from gridgraph. Area never accumulates into G, so it
//     shapes expansion order but not the length of the route returned.
//   - The frontier is ordered by (Total, H, linear index). The index
//     tie-break makes the order strict, so results are deterministic.
//   - H is computed once per node and cached. The cache has its own "set"
//     flag, so a true zero estimate is cached too.
//
// Heuristics:
//
//   - Manhattan:        |Δcol| + |Δrow|. Admissible for unit steps; routes are shortest.
//   - EuclideanSquared: Δcol² + Δrow² (no square root). It can overestimate,
//     so the route found may be longer than the shortest one.
//
// Strategies:
//
//   - AStar is the only implemented strategy.
//   - BreadthFirst and UniformCost are named so configuration files can
//     mention them, but FindPath rejects them with ErrStrategyUnimplemented
//     without searching.
//
// Configuration:
//
// Options are values. FindPath takes functional options per call; a Finder
// carries caller-held defaults for repeated use. There is no package-level
// mutable state, so concurrent searches never observe each other's settings.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H)), each cell enters the frontier at most once per improvement.
//   - Space: O(W·H) for the node arena and frontier, allocated per call.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidInput, together with one of ErrStartOutOfBounds, ErrTargetOutOfBounds,
//     ErrStartObstacle, ErrTargetObstacle or a gridgraph validation sentinel.
//   - ErrNoPath: the frontier emptied without reaching the target.
//   - ErrStrategyUnimplemented: the configured strategy has no implementation.
//   - ErrOptionViolation: an invalid option value.
//   - ErrBudgetExceeded: MaxExpansions was reached.
//
// Every failure also yields Result.Found == false and a nil Path.
//
// Diagnostics are written to Options.Logger (log/slog), discarded by default,
// and never influence results. Prometheus counters record outcomes, expanded
// nodes and latency.
//
// Example:
//
//	res, err := astar.FindPath(
//	    gridgraph.Point{Col: 0, Row: 0},
//	    gridgraph.Point{Col: 2, Row: 6},
//	    terrain,
//	    gridgraph.Dimensions{Cols: 4, Rows: 7},
//	    astar.WithHeuristic(astar.Manhattan),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path)
package astar
