package astar

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome label values.
const (
	outcomeFound         = "found"
	outcomeNoPath        = "no_path"
	outcomeInvalid       = "invalid_input"
	outcomeUnimplemented = "unimplemented"
	outcomeBudget        = "budget_exceeded"
	outcomeCanceled      = "canceled"
)

var (
	// searchesTotal counts searches by outcome
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lvpath_astar_searches_total",
		Help: "Total grid searches by outcome",
	}, []string{"outcome"})

	// expandedNodes tracks frontier pops per search
	expandedNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvpath_astar_expanded_nodes",
		Help:    "Nodes expanded per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k
	})

	// searchDuration tracks search latency
	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "lvpath_astar_search_duration_seconds",
		Help:    "Search duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
	})
)

// observe records one finished search.
func observe(err error, expanded int, d time.Duration) {
	searchesTotal.WithLabelValues(outcome(err)).Inc()
	expandedNodes.Observe(float64(expanded))
	searchDuration.Observe(d.Seconds())
}
