package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/gridgraph"
	"github.com/katalvlaran/lvpath/render"
	"github.com/katalvlaran/lvpath/scenario"
)

// cli holds flag values shared by all subcommands.
type cli struct {
	verbose       bool
	plain         bool
	heuristic     string
	strategy      string
	maxExpansions int
	scenarioPaths []string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "lvpath",
		Short:         "Shortest paths on 4-connected terrain grids",
		Long:          "lvpath finds step-minimal routes across grids of open, water and obstacle cells using A* search.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "log search diagnostics to stderr")
	pf.BoolVar(&c.plain, "plain", false, "render without colors")
	pf.StringVar(&c.heuristic, "heuristic", "", "override heuristic (manhattan, euclidean-squared)")
	pf.StringVar(&c.strategy, "strategy", "", "override strategy (astar, breadth-first, uniform-cost)")
	pf.IntVar(&c.maxExpansions, "max-expansions", 0, "abort after this many expansions (0 = unlimited)")

	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Run searches described by YAML scenarios",
		Long: `Run one search per --scenario file. Files are searched concurrently;
reports are printed in the order the files were given.`,
		Args: cobra.NoArgs,
		RunE: c.find,
	}
	findCmd.Flags().StringSliceVarP(&c.scenarioPaths, "scenario", "s", nil, "scenario file (repeatable)")
	_ = findCmd.MarkFlagRequired("scenario")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in 4x7 demo map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			finder, over, err := c.setup(cmd)
			if err != nil {
				return err
			}

			return c.report(cmd.OutOrStdout(), finder, scenario.Demo(), over)
		},
	}

	root.AddCommand(findCmd, demoCmd)

	return root
}

// setup builds the shared Finder (logger and context) and the per-search
// flag overrides.
func (c *cli) setup(cmd *cobra.Command) (*astar.Finder, []astar.Option, error) {
	over, err := c.overrides(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts := []astar.Option{astar.WithContext(cmd.Context())}
	if c.verbose {
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, astar.WithLogger(slog.New(h)))
	}
	finder, err := astar.NewFinder(opts...)
	if err != nil {
		return nil, nil, err
	}

	return finder, over, nil
}

// overrides turns explicitly set flags into options applied after the scenario's.
func (c *cli) overrides(cmd *cobra.Command) ([]astar.Option, error) {
	var opts []astar.Option
	if f := cmd.Flag("heuristic"); f != nil && f.Changed {
		h, err := astar.ParseHeuristic(c.heuristic)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithHeuristic(h))
	}
	if f := cmd.Flag("strategy"); f != nil && f.Changed {
		s, err := astar.ParseStrategy(c.strategy)
		if err != nil {
			return nil, err
		}
		opts = append(opts, astar.WithStrategy(s))
	}
	if f := cmd.Flag("max-expansions"); f != nil && f.Changed {
		opts = append(opts, astar.WithMaxExpansions(c.maxExpansions))
	}

	return opts, nil
}

func (c *cli) find(cmd *cobra.Command, _ []string) error {
	scenarios := make([]*scenario.Scenario, len(c.scenarioPaths))
	for i, path := range c.scenarioPaths {
		s, err := scenario.Load(path)
		if err != nil {
			return err
		}
		scenarios[i] = s
	}
	finder, over, err := c.setup(cmd)
	if err != nil {
		return err
	}

	reports := make([]bytes.Buffer, len(scenarios))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, s := range scenarios {
		g.Go(func() error {
			return c.report(&reports[i], finder, s, over)
		})
	}
	err = g.Wait()

	out := cmd.OutOrStdout()
	for i := range reports {
		if _, werr := reports[i].WriteTo(out); werr != nil {
			return werr
		}
	}

	return err
}

// report runs s with over applied after the scenario's own options and writes
// its map, route and counters to w. On a no-path outcome it writes an island
// diagnosis instead.
func (c *cli) report(w io.Writer, finder *astar.Finder, s *scenario.Scenario, over []astar.Option) error {
	terrain, dims, err := s.Grid()
	if err != nil {
		return err
	}
	if s.Name != "" {
		fmt.Fprintf(w, "scenario: %s\n", s.Name)
	}

	res, err := finder.FindPath(s.Start, s.Target, terrain, dims, append(s.Options(), over...)...)
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			explain(w, terrain, dims, s.Start, s.Target)
		}

		return err
	}

	var ropts []render.Option
	if c.plain {
		ropts = append(ropts, render.WithPlain())
	}
	fmt.Fprint(w, render.Grid(terrain, dims, res.Path, ropts...))
	fmt.Fprintf(w, "path: %v\n", res.Path)
	fmt.Fprintf(w, "steps: %d expanded: %d\n", res.Cost, res.Expanded)

	return nil
}

// explain reports why no route exists when start and target sit on
// separate islands of traversable terrain, and which obstacles to clear.
func explain(w io.Writer, terrain []int, dims gridgraph.Dimensions, start, target gridgraph.Point) {
	gg := gridgraph.Build(terrain, dims)
	if gg.Reachable(start, target) {
		return
	}
	fmt.Fprintf(w, "start (%d,%d) and target (%d,%d) lie on different islands; the map has %d\n",
		start.Col, start.Row, target.Col, target.Row, len(gg.ConnectedComponents()))

	cleared, err := gg.Bridge(start, target)
	if err != nil || len(cleared) == 0 {
		return
	}
	fmt.Fprintf(w, "clearing %d obstacle(s) would join them:", len(cleared))
	for _, idx := range cleared {
		p := dims.Point(idx)
		fmt.Fprintf(w, " (%d,%d)", p.Col, p.Row)
	}
	fmt.Fprintln(w)
}
