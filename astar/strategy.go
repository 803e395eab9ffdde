package astar

import (
	"fmt"
	"strings"
)

// Strategy selects the search algorithm.
type Strategy uint8

const (
	// AStar is informed best-first search. The only implemented strategy.
	AStar Strategy = iota
	// BreadthFirst is accepted but unimplemented: FindPath returns ErrStrategyUnimplemented.
	BreadthFirst
	// UniformCost (Dijkstra) is accepted but unimplemented: FindPath returns ErrStrategyUnimplemented.
	UniformCost

	strategyCount
)

var strategyNames = [strategyCount]string{"astar", "breadth-first", "uniform-cost"}

func (s Strategy) valid() bool { return s < strategyCount }

// Implemented reports whether FindPath can execute s.
func (s Strategy) Implemented() bool { return s == AStar }

// String returns the canonical name of s.
func (s Strategy) String() string {
	if !s.valid() {
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
	return strategyNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("astar: unknown strategy %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStrategy parses a strategy name, case-insensitively.
// "dijkstra" is accepted for UniformCost.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*":
		return AStar, nil
	case "breadth-first", "bfs":
		return BreadthFirst, nil
	case "uniform-cost", "dijkstra":
		return UniformCost, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Heuristic selects the estimate of remaining cost.
type Heuristic uint8

const (
	// Manhattan is |Δcol| + |Δrow|.
	Manhattan Heuristic = iota
	// EuclideanSquared is Δcol² + Δrow². No square root is taken, so it can
	// overestimate and A* loses its optimality guarantee under this heuristic.
	EuclideanSquared

	heuristicCount
)

var heuristicNames = [heuristicCount]string{"manhattan", "euclidean-squared"}

func (h Heuristic) valid() bool { return h < heuristicCount }

// String returns the canonical name of h.
func (h Heuristic) String() string {
	if !h.valid() {
		return fmt.Sprintf("heuristic(%d)", uint8(h))
	}
	return heuristicNames[h]
}

// MarshalText implements encoding.TextMarshaler.
func (h Heuristic) MarshalText() ([]byte, error) {
	if !h.valid() {
		return nil, fmt.Errorf("astar: unknown heuristic %d", uint8(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Heuristic) UnmarshalText(text []byte) error {
	v, err := ParseHeuristic(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// ParseHeuristic parses a heuristic name, case-insensitively.
// "euclidean" is accepted as an alias of EuclideanSquared.
func ParseHeuristic(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return Manhattan, nil
	case "euclidean-squared", "euclidean":
		return EuclideanSquared, nil
	}
	return 0, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
}
