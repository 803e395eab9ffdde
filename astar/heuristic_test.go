package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// TestEstimate covers both heuristics, including the missing square root.
func TestEstimate(t *testing.T) {
	a, b := gridgraph.Point{Col: 0, Row: 0}, gridgraph.Point{Col: 2, Row: 6}
	assert.EqualValues(t, 8, Manhattan.Estimate(a, b))
	assert.EqualValues(t, 40, EuclideanSquared.Estimate(a, b))
	assert.EqualValues(t, 40, EuclideanSquared.Estimate(b, a))
	assert.EqualValues(t, 0, Manhattan.Estimate(b, b))
	assert.EqualValues(t, 1, EuclideanSquared.Estimate(gridgraph.Point{Col: 3, Row: 3}, gridgraph.Point{Col: 3, Row: 2}))
}

// TestHeuristic_CachesZero checks a legitimately zero estimate is cached, not recomputed.
func TestHeuristic_CachesZero(t *testing.T) {
	cfg := DefaultOptions()
	target := gridgraph.Point{Col: 1, Row: 0}
	r := newRunner(cfg, []int{1, 1}, gridgraph.Dimensions{Cols: 2, Rows: 1}, gridgraph.Point{}, target)

	n := &r.grid.Nodes[1]
	require.False(t, n.HSet)
	require.Zero(t, r.heuristic(n))
	require.True(t, n.HSet)

	// Switching the heuristic must not affect a cached value.
	r.options.Heuristic = EuclideanSquared
	r.target = gridgraph.Point{}
	require.Zero(t, r.heuristic(n))
}

// TestHeuristic_ComputesOnce checks nonzero caching per node.
func TestHeuristic_ComputesOnce(t *testing.T) {
	cfg := DefaultOptions()
	cfg.Heuristic = EuclideanSquared
	dims := gridgraph.Dimensions{Cols: 3, Rows: 3}
	r := newRunner(cfg, make([]int, 9), dims, gridgraph.Point{}, gridgraph.Point{Col: 2, Row: 2})

	n := &r.grid.Nodes[0]
	require.EqualValues(t, 8, r.heuristic(n))
	r.target = gridgraph.Point{Col: 0, Row: 1}
	require.EqualValues(t, 8, r.heuristic(n))
	require.EqualValues(t, 2, r.heuristic(&r.grid.Nodes[1]))
}

// TestRelax_AreaCostOnlyInTotal shows water raises Total but not G.
func TestRelax_AreaCostOnlyInTotal(t *testing.T) {
	cfg := DefaultOptions()
	terrain := []int{1, 2, 1}
	dims := gridgraph.Dimensions{Cols: 3, Rows: 1}
	r := newRunner(cfg, terrain, dims, gridgraph.Point{}, gridgraph.Point{Col: 2})
	r.init()
	require.Equal(t, 0, r.open.popMin())

	r.relax(0)
	water := r.grid.Nodes[1]
	assert.EqualValues(t, 1, water.G)
	assert.EqualValues(t, 1, water.H)
	assert.EqualValues(t, 1+1+gridgraph.WaterAreaCost, water.Total)
	assert.Equal(t, 0, water.Parent)
	assert.True(t, water.InFrontier)
}
