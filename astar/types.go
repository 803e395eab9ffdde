// Package astar defines core types and configuration options
// for the grid A* search engine.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNoPath indicates the frontier emptied before the target was reached.
	ErrNoPath = errors.New("astar: could not reach destination")

	// ErrInvalidInput wraps every input validation failure, together with the
	// specific sentinel (from this package or gridgraph).
	ErrInvalidInput = errors.New("astar: invalid search input")

	// ErrStartOutOfBounds indicates the start lies outside the grid.
	ErrStartOutOfBounds = errors.New("astar: invalid start position")

	// ErrTargetOutOfBounds indicates the target lies outside the grid.
	ErrTargetOutOfBounds = errors.New("astar: invalid target position")

	// ErrStartObstacle indicates the start cell is an obstacle.
	ErrStartObstacle = errors.New("astar: start is an obstacle")

	// ErrTargetObstacle indicates the target cell is an obstacle.
	ErrTargetObstacle = errors.New("astar: target is an obstacle")

	// ErrStrategyUnimplemented indicates a strategy that is named but has no
	// implementation. No search work is performed.
	ErrStrategyUnimplemented = errors.New("astar: search strategy not implemented")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded indicates MaxExpansions pops happened without reaching the target.
	ErrBudgetExceeded = errors.New("astar: expansion budget exhausted")
)

// Options configures a search.
//
// Strategy      – search strategy; only AStar is implemented.
// Heuristic     – estimate used for H.
// Logger        – diagnostics sink; defaults to a discarding logger.
// Ctx           – checked once per expansion; cancellation aborts the search.
// MaxExpansions – if > 0, the search stops after this many pops.
type Options struct {
	Strategy      Strategy
	Heuristic     Heuristic
	Logger        *slog.Logger
	Ctx           context.Context
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures search behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with defaults:
//   - Strategy:      AStar
//   - Heuristic:     Manhattan
//   - Logger:        discards everything
//   - Ctx:           context.Background()
//   - MaxExpansions: 0 (unbounded)
func DefaultOptions() Options {
	return Options{
		Strategy:      AStar,
		Heuristic:     Manhattan,
		Logger:        slog.New(slog.DiscardHandler),
		Ctx:           context.Background(),
		MaxExpansions: 0,
	}
}

// WithStrategy selects the search strategy. Unknown values are an option violation.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if !s.valid() {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithHeuristic selects the heuristic. Unknown values are an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if !h.valid() {
			o.err = fmt.Errorf("%w: unknown heuristic %d", ErrOptionViolation, h)
			return
		}
		o.Heuristic = h
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of frontier pops.
//
//	n > 0:  stop with ErrBudgetExceeded after n pops
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// apply layers opts over o and returns the first recorded violation.
func (o *Options) apply(opts ...Option) error {
	for _, opt := range opts {
		opt(o)
	}
	return o.err
}

// Result is the outcome of a search.
//
// Path holds linear cell indices (row*cols+col) from the first step after the
// start through the target; it excludes the start and is empty when start
// equals target. Cost is the accumulated step cost at the target, which under
// unit steps equals len(Path). Expanded counts frontier pops.
type Result struct {
	Path     []int
	Found    bool
	Cost     uint32
	Expanded int
}
