package astar

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// TestMetrics_Outcomes checks that each search outcome is counted under its label.
func TestMetrics_Outcomes(t *testing.T) {
	count := func(label string) float64 {
		return testutil.ToFloat64(searchesTotal.WithLabelValues(label))
	}
	dims := gridgraph.Dimensions{Cols: 3, Rows: 1}
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		label   string
		terrain []int
		opts    []Option
	}{
		{outcomeFound, []int{1, 1, 1}, nil},
		{outcomeNoPath, []int{1, 0, 1}, nil},
		{outcomeInvalid, []int{1, 1}, nil},
		{outcomeUnimplemented, []int{1, 1, 1}, []Option{WithStrategy(UniformCost)}},
		{outcomeBudget, []int{1, 1, 1}, []Option{WithMaxExpansions(1)}},
		{outcomeCanceled, []int{1, 1, 1}, []Option{WithContext(canceled)}},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			before := count(tc.label)
			_, _ = FindPath(gridgraph.Point{}, gridgraph.Point{Col: 2}, tc.terrain, dims, tc.opts...)
			require.Equal(t, before+1, count(tc.label))
		})
	}
}

// TestOutcome_Classification maps errors to labels.
func TestOutcome_Classification(t *testing.T) {
	require.Equal(t, outcomeFound, outcome(nil))
	require.Equal(t, outcomeNoPath, outcome(ErrNoPath))
	require.Equal(t, outcomeCanceled, outcome(context.DeadlineExceeded))
}
