package astar

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// FindPath computes a shortest 4-connected route from start to target over
// terrain, a row-major slice of raw cell values (0 = obstacle, 1 = path) of
// size dims.Cols*dims.Rows. It accepts functional options to select the
// strategy and heuristic, attach a logger, or bound the search.
//
// Returns:
//
//   - Result.Found and Result.Path (start-exclusive, target-inclusive linear
//     indices) on success; an empty Path when start == target.
//   - Found == false, a nil Path and a non-nil error otherwise.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. Strategy must be implemented (ErrStrategyUnimplemented); no work is done otherwise.
//  3. Terrain must match dims, be non-empty, hold only 0/1 and at least one 1
//     (ErrInvalidInput wrapping the gridgraph sentinel).
//  4. Start and target must be in bounds (ErrStartOutOfBounds, ErrTargetOutOfBounds).
//  5. Target, then start, must not be obstacles (ErrTargetObstacle, ErrStartObstacle).
//
// Search failures: ErrNoPath when the frontier empties, ErrBudgetExceeded when
// MaxExpansions is reached, or the context error on cancellation.
//
// Complexity:
//
//   - Time:  O(W·H · log(W·H))
//   - Space: O(W·H)
func FindPath(start, target gridgraph.Point, terrain []int, dims gridgraph.Dimensions, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	if err := cfg.apply(opts...); err != nil {
		return Result{}, err
	}

	return search(cfg, start, target, terrain, dims)
}

// Finder holds a caller-owned set of default options. It is immutable after
// construction, so a single Finder may serve concurrent searches.
type Finder struct {
	options Options
}

// NewFinder builds a Finder from DefaultOptions overridden by opts.
func NewFinder(opts ...Option) (*Finder, error) {
	cfg := DefaultOptions()
	if err := cfg.apply(opts...); err != nil {
		return nil, err
	}

	return &Finder{options: cfg}, nil
}

// Options returns a copy of the Finder's defaults.
func (f *Finder) Options() Options {
	return f.options
}

// FindPath runs FindPath with the Finder's defaults, overridden per call by opts.
func (f *Finder) FindPath(start, target gridgraph.Point, terrain []int, dims gridgraph.Dimensions, opts ...Option) (Result, error) {
	cfg := f.options
	if err := cfg.apply(opts...); err != nil {
		return Result{}, err
	}

	return search(cfg, start, target, terrain, dims)
}

// search dispatches on strategy, validates input and runs the A* loop.
func search(cfg Options, start, target gridgraph.Point, terrain []int, dims gridgraph.Dimensions) (res Result, err error) {
	began := time.Now()
	defer func() {
		observe(err, res.Expanded, time.Since(began))
		if err != nil {
			cfg.Logger.Info("could not reach destination", slog.String("error", err.Error()))
		}
	}()

	// 1) Strategy dispatch. Only A* has an implementation.
	if !cfg.Strategy.Implemented() {
		cfg.Logger.Error("search strategy not implemented", slog.String("strategy", cfg.Strategy.String()))
		return Result{}, fmt.Errorf("%w: %s", ErrStrategyUnimplemented, cfg.Strategy)
	}

	// 2) Validate input before touching any search state.
	if err = validate(start, target, terrain, dims); err != nil {
		cfg.Logger.Warn("invalid search input", slog.String("error", err.Error()))
		return Result{}, err
	}

	// 3) Trivial case.
	if start == target {
		cfg.Logger.Info("already on the target destination",
			slog.Int("col", start.Col), slog.Int("row", start.Row))
		return Result{Found: true}, nil
	}

	// 4) Build the arena and run.
	r := newRunner(cfg, terrain, dims, start, target)
	r.init()

	return r.process()
}

// validate applies the input checks of FindPath steps 3–5.
func validate(start, target gridgraph.Point, terrain []int, dims gridgraph.Dimensions) error {
	if err := gridgraph.ValidateTerrain(terrain, dims); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !dims.Contains(start) {
		return fmt.Errorf("%w: %w (%d,%d)", ErrInvalidInput, ErrStartOutOfBounds, start.Col, start.Row)
	}
	if !dims.Contains(target) {
		return fmt.Errorf("%w: %w (%d,%d)", ErrInvalidInput, ErrTargetOutOfBounds, target.Col, target.Row)
	}
	if terrain[dims.Index(target)] == gridgraph.RawObstacle {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrTargetObstacle)
	}
	if terrain[dims.Index(start)] == gridgraph.RawObstacle {
		return fmt.Errorf("%w: %w", ErrInvalidInput, ErrStartObstacle)
	}

	return nil
}

// runner holds the mutable state of a single search. Nothing in it is shared
// with other calls.
type runner struct {
	options   Options
	grid      *gridgraph.GridGraph
	open      *frontier
	start     gridgraph.Point
	target    gridgraph.Point
	startID   int
	neighbors []int // scratch buffer reused across expansions
	expanded  int
}

func newRunner(cfg Options, terrain []int, dims gridgraph.Dimensions, start, target gridgraph.Point) *runner {
	gg := gridgraph.Build(terrain, dims)

	return &runner{
		options:   cfg,
		grid:      gg,
		open:      newFrontier(gg.Nodes),
		start:     start,
		target:    target,
		startID:   dims.Index(start),
		neighbors: make([]int, 0, 4),
	}
}

// init finalizes the start node and seeds the frontier with it.
func (r *runner) init() {
	s := &r.grid.Nodes[r.startID]
	s.Visited = true
	s.G = 0
	r.heuristic(s)
	s.UpdateTotal()
	s.InFrontier = true
	r.open.insert(r.startID)
}

// process is the main loop. It pops the least node, stops at the target and
// otherwise relaxes the node's neighbours.
//
// Loop termination conditions:
//
//   - The target is popped (success).
//   - The frontier empties (ErrNoPath).
//   - MaxExpansions pops have happened (ErrBudgetExceeded).
//   - The context is done (its error).
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return Result{Expanded: r.expanded}, err
		}
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return Result{Expanded: r.expanded}, fmt.Errorf("%w after %d expansions", ErrBudgetExceeded, r.expanded)
		}

		id := r.open.popMin()
		cur := &r.grid.Nodes[id]
		cur.InFrontier = false
		cur.Visited = true
		r.expanded++

		if cur.Pos == r.target {
			return Result{
				Path:     r.reconstruct(id),
				Found:    true,
				Cost:     cur.G,
				Expanded: r.expanded,
			}, nil
		}

		r.relax(id)
	}

	return Result{Expanded: r.expanded}, ErrNoPath
}

// relax examines the 4-connected neighbours of node id. Every step costs 1;
// area cost only enters through Total.
//
// A neighbour is updated when the new g is strictly lower or when it is not
// yet in the frontier. A node already in the frontier is removed first,
// since its ordering key is about to change.
func (r *runner) relax(id int) {
	step := r.grid.Nodes[id].G + 1

	r.neighbors = r.grid.Neighbors(id, r.neighbors[:0])
	for _, nid := range r.neighbors {
		nb := &r.grid.Nodes[nid]
		if nb.Visited || nb.IsObstacle() {
			continue
		}
		if step >= nb.G && nb.InFrontier {
			continue
		}

		if nb.InFrontier {
			r.open.remove(nid)
		}
		nb.G = step
		r.heuristic(nb)
		nb.UpdateTotal()
		nb.Parent = id
		nb.InFrontier = true
		r.open.insert(nid)
	}
}

// reconstruct walks parent links from goal back to the start position and
// returns the indices in start→goal order, excluding the start.
func (r *runner) reconstruct(goal int) []int {
	var path []int
	for id := goal; r.grid.Nodes[id].Pos != r.start; id = r.grid.Nodes[id].Parent {
		path = append(path, id)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// outcome classifies err for metrics.
func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeFound
	case errors.Is(err, ErrNoPath):
		return outcomeNoPath
	case errors.Is(err, ErrInvalidInput):
		return outcomeInvalid
	case errors.Is(err, ErrStrategyUnimplemented):
		return outcomeUnimplemented
	case errors.Is(err, ErrBudgetExceeded):
		return outcomeBudget
	default:
		return outcomeCanceled
	}
}
