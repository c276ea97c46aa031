// Command lvmaze builds a maze, solves it with depth-first search and A*,
// and prints the maze, each solution path and a per-solver report.
//
// Usage:
//
//	lvmaze [-rows 6] [-cols 6] [-barriers 4] [-seed 0] [-retries 1]
//	       [-color auto|always|never] [-layout maze.txt]
//
// With -layout the maze is read from a text file (S start, G goal, X
// barrier, . free) and the random-generation flags are ignored.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/bfs"
	"github.com/katalvlaran/lvmaze/builder"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
	"github.com/katalvlaran/lvmaze/render"
	"github.com/katalvlaran/lvmaze/report"
)

func main() {
	rows := flag.Int("rows", 6, "Number of grid rows")
	cols := flag.Int("cols", 6, "Number of grid columns")
	barriers := flag.Int("barriers", 4, "Number of barrier cells")
	seed := flag.Int64("seed", 0, "Random seed (0 = time based)")
	retries := flag.Int("retries", 1, "Redraw the maze up to N times until the goal is reachable (1 = accept the first draw)")
	color := flag.String("color", "auto", "Path highlighting: auto, always or never")
	layout := flag.String("layout", "", "Read the maze from a text file instead of generating one")
	flag.Parse()

	useColor, err := colorMode(*color)
	if err == nil {
		err = checkCounts(*rows, *cols, *barriers, *retries)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Usage: lvmaze [-rows N] [-cols N] [-barriers N] [-seed N] [-retries N] [-color auto|always|never] [-layout file]")
		os.Exit(2)
	}

	// Step 1: Build the maze.
	var g *gridgraph.Grid
	if *layout != "" {
		g, err = loadLayout(*layout)
		if err != nil {
			log.Fatalf("Failed to load layout: %v", err)
		}
		log.Printf("Loaded %dx%d maze from %s", g.Rows(), g.Cols(), *layout)
	} else {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		opts := []builder.Option{builder.WithSeed(*seed), builder.WithBarriers(*barriers)}
		if *retries > 1 {
			opts = append(opts, builder.WithReachableGoal(*retries))
		}
		g, err = builder.Random(*rows, *cols, opts...)
		if err != nil {
			log.Fatalf("Failed to build maze: %v", err)
		}
		log.Printf("Generated %dx%d maze, seed %d, %d barriers", g.Rows(), g.Cols(), *seed, len(g.Barriers()))
	}
	log.Printf("Start %v (node %d), goal %v (node %d)", g.Start(), g.CellIndex(g.Start()), g.Goal(), g.CellIndex(g.Goal()))

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	ropts := []render.Option{render.WithColor(useColor)}

	if err := render.Write(out, g, nil, ropts...); err != nil {
		log.Fatalf("Failed to render maze: %v", err)
	}
	fmt.Fprintln(out)

	// Step 2: Depth-first search.
	dres, err := dfs.Solve(g, g.Start())
	if err != nil {
		log.Fatalf("DFS failed: %v", err)
	}
	if err := printRun(out, g, report.FromDFS(dres), ropts); err != nil {
		log.Fatalf("Failed to print DFS result: %v", err)
	}

	// Step 3: A*.
	ares, err := astar.Solve(g)
	if err != nil {
		log.Fatalf("A* failed: %v", err)
	}
	if err := printRun(out, g, report.FromAStar(ares), ropts); err != nil {
		log.Fatalf("Failed to print A* result: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}

	// Step 4: Cross-check against the breadth-first optimum.
	ref, err := bfs.Solve(g, g.Start())
	if err != nil {
		log.Fatalf("BFS failed: %v", err)
	}
	crossCheck(ref, g, dres, ares)
}

// colorMode maps the -color flag to a render setting.
func colorMode(mode string) (bool, error) {
	switch mode {
	case "auto":
		return render.ColorFor(os.Stdout), nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}

	return false, fmt.Errorf("unknown color mode %q", mode)
}

// checkCounts rejects numeric flags the builder options would panic on or
// that can never describe a maze.
func checkCounts(rows, cols, barriers, retries int) error {
	switch {
	case rows < 1 || cols < 1:
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", rows, cols)
	case barriers < 0:
		return fmt.Errorf("barrier count must be non-negative, got %d", barriers)
	case retries < 1:
		return fmt.Errorf("retries must be at least 1, got %d", retries)
	}

	return nil
}

// loadLayout reads a maze drawing, one row per line. Empty lines are
// ignored; a line of spaces is a row of free cells.
func loadLayout(path string) (*gridgraph.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		l = strings.TrimRight(l, "\r")
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}

	return builder.FromLayout(lines)
}

// printRun renders the solver's path and writes its report, separated by a
// blank line.
func printRun(out *bufio.Writer, g *gridgraph.Grid, s *report.Summary, ropts []render.Option) error {
	if s.Found {
		if err := render.Write(out, g, s.Path, ropts...); err != nil {
			return err
		}
	}
	if err := report.Write(out, g, s); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)

	return err
}

// crossCheck logs how both solvers compare to the BFS distance.
func crossCheck(ref *bfs.Result, g *gridgraph.Grid, d *dfs.Result, a *astar.Result) {
	dist, ok := ref.Distance(g.Goal())
	if !ok {
		log.Printf("BFS: goal unreachable (%d cells reachable from start)", len(ref.Order))
		if d.Found || a.Found {
			log.Printf("WARNING: a solver reported a path to an unreachable goal")
		}
		return
	}
	log.Printf("BFS: shortest path %d moves", dist)
	if d.Found {
		log.Printf("DFS: %d moves (%+d)", len(d.Path)-1, len(d.Path)-1-dist)
	}
	if a.Found {
		log.Printf("A*: %d moves (%+d), %d expansions", a.TimeToGoal, a.TimeToGoal-dist, a.Expanded)
	}
}
