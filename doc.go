// Package lvpath finds shortest routes across rectangular terrain grids.
//
// 🚀 What is lvpath?
//
//	A small, deterministic pathfinding toolkit:
//		• Grid store: validated terrain, per-cell search state, islands
//		• Search: A* over 4-connected cells with Manhattan or squared Euclidean estimates
//		• Scenarios: YAML maps with start, target and search settings
//		• Rendering: console maps with the route marked
//
// Under the hood, everything is organized under four subpackages:
//
//	gridgraph/ terrain validation, node store, connected islands, bridging
//	astar/     FindPath, Finder, options, metrics
//	scenario/  YAML scenario loading and the built-in demo map
//	render/    lipgloss console rendering
//
// The lvpath command (cmd/lvpath) ties them together:
//
//	lvpath demo --heuristic manhattan
//	lvpath find --scenario maps/harbour.yaml
//
// Quick ASCII example, route from the top-left corner to (2,6):
//
//	[O][P][O][O]
//	[O][P][X][O]
//	[X][P][O][O]
//	[X][P][O][X]
//	[X][P][O][O]
//	[O][P][X][O]
//	[O][P][P][O]
//
//	go get github.com/katalvlaran/lvpath
package lvpath
