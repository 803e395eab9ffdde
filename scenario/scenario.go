// Package scenario loads grid search scenarios from YAML: terrain rows,
// start and target cells, and search configuration.
//
// Example document:
//
//	name: demo
//	heuristic: manhattan
//	strategy: astar
//	start: {col: 0, row: 0}
//	target: {col: 2, row: 6}
//	terrain:
//	  - [1, 1, 1, 1]
//	  - [1, 1, 0, 1]
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/gridgraph"
)

var (
	// ErrNonRectangular indicates terrain rows of differing lengths.
	ErrNonRectangular = errors.New("scenario: all terrain rows must have the same length")
	// ErrDecode indicates the document could not be parsed.
	ErrDecode = errors.New("scenario: cannot decode document")
)

// Scenario describes one search. Strategy and Heuristic default to their zero
// values (AStar, Manhattan) when omitted.
type Scenario struct {
	Name          string          `yaml:"name,omitempty"`
	Strategy      astar.Strategy  `yaml:"strategy"`
	Heuristic     astar.Heuristic `yaml:"heuristic"`
	MaxExpansions int             `yaml:"max_expansions,omitempty"`
	Start         gridgraph.Point `yaml:"start"`
	Target        gridgraph.Point `yaml:"target"`
	Terrain       [][]int         `yaml:"terrain,flow"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &s, nil
}

// Marshal encodes s as YAML.
func Marshal(s *Scenario) ([]byte, error) {
	return yaml.Marshal(s)
}

// Grid flattens the terrain rows into the row-major slice and dimensions
// FindPath expects. Emptiness and cell values are left to search validation.
func (s *Scenario) Grid() ([]int, gridgraph.Dimensions, error) {
	if len(s.Terrain) == 0 {
		return nil, gridgraph.Dimensions{}, nil
	}
	cols := len(s.Terrain[0])
	flat := make([]int, 0, cols*len(s.Terrain))
	for i, row := range s.Terrain {
		if len(row) != cols {
			return nil, gridgraph.Dimensions{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return flat, gridgraph.Dimensions{Cols: cols, Rows: len(s.Terrain)}, nil
}

// Options converts the scenario's search settings into astar options.
func (s *Scenario) Options() []astar.Option {
	return []astar.Option{
		astar.WithStrategy(s.Strategy),
		astar.WithHeuristic(s.Heuristic),
		astar.WithMaxExpansions(s.MaxExpansions),
	}
}

// Run executes the scenario. extra options are applied after the scenario's own.
func (s *Scenario) Run(extra ...astar.Option) (astar.Result, error) {
	terrain, dims, err := s.Grid()
	if err != nil {
		return astar.Result{}, err
	}
	opts := append(s.Options(), extra...)

	return astar.FindPath(s.Start, s.Target, terrain, dims, opts...)
}

// Demo returns the built-in 4×7 map routed from (0,0) to (2,6) with the
// squared Euclidean heuristic.
func Demo() *Scenario {
	return &Scenario{
		Name:      "demo",
		Strategy:  astar.AStar,
		Heuristic: astar.EuclideanSquared,
		Start:     gridgraph.Point{Col: 0, Row: 0},
		Target:    gridgraph.Point{Col: 2, Row: 6},
		Terrain: [][]int{
			{1, 1, 1, 1},
			{1, 1, 0, 1},
			{0, 1, 1, 1},
			{0, 1, 1, 0},
			{0, 1, 1, 1},
			{1, 1, 0, 1},
			{1, 1, 1, 1},
		},
	}
}
