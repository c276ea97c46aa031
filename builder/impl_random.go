// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_random.go — implementation of Random(rows, cols, opts...).
//
// Draw order per attempt (stable, part of the determinism contract):
//   1. start: one draw over the start band, node range [0, startColumns*rows).
//   2. goal:  one draw over the goal band minus the start cell.
//   3. barriers: `barriers` draws (partial Fisher–Yates) over every node
//      except start and goal, in ascending node order.
//
// Complexity:
//   • Time: O(W×H) per attempt, + O(W×H×8) when reachability is checked.
//   • Space: O(W×H).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

const methodRandom = "Random"

// Random builds a rows×cols maze with one start, one goal and cfg.barriers
// barrier cells, all drawn from the injected RNG.
// Returns ErrTooSmall, ErrTooManyBarriers, ErrNeedRandSource or, with
// WithReachableGoal, ErrConstructFailed after the last attempt.
func Random(rows, cols int, opts ...Option) (*gridgraph.Grid, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters early (fail fast; no partial work).
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodRandom, rows, cols, ErrTooSmall)
	}
	if cfg.startColumns > cols || cfg.goalColumns > cols {
		return nil, fmt.Errorf("%s: bands start=%d goal=%d exceed cols=%d: %w",
			methodRandom, cfg.startColumns, cfg.goalColumns, cols, ErrTooSmall)
	}
	if cfg.barriers > rows*cols-2 {
		return nil, fmt.Errorf("%s: %d barriers on %d cells: %w",
			methodRandom, cfg.barriers, rows*cols, ErrTooManyBarriers)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	// 2) Draw until accepted or out of attempts.
	for attempt := 0; attempt < cfg.attempts; attempt++ {
		g, err := drawMaze(rows, cols, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, err)
		}
		if !cfg.reachable || g.Connected(g.Start(), g.Goal()) {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%s: goal unreachable after %d attempts: %w",
		methodRandom, cfg.attempts, ErrConstructFailed)
}

// drawMaze performs one attempt of the draw sequence documented above.
func drawMaze(rows, cols int, cfg builderConfig) (*gridgraph.Grid, error) {
	decode := func(n int) gridgraph.Cell {
		return gridgraph.Cell{X: n / rows, Y: n % rows}
	}

	// 1) Start from the leftmost band.
	startNode := cfg.rng.Intn(cfg.startColumns * rows)

	// 2) Goal from the rightmost band, skipping the start node if it lies there.
	lo := (cols - cfg.goalColumns) * rows
	size := cfg.goalColumns * rows
	if startNode >= lo {
		size--
	}
	if size < 1 {
		return nil, fmt.Errorf("goal band holds only the start node %d: %w", startNode, ErrTooSmall)
	}
	goalNode := lo + cfg.rng.Intn(size)
	if startNode >= lo && goalNode >= startNode {
		goalNode++
	}

	// 3) Barriers from every remaining node.
	candidates := make([]int, 0, rows*cols-2)
	for n := 0; n < rows*cols; n++ {
		if n != startNode && n != goalNode {
			candidates = append(candidates, n)
		}
	}
	picked := pickDistinct(candidates, cfg.barriers, cfg.rng)
	barriers := make([]gridgraph.Cell, len(picked))
	for i, n := range picked {
		barriers[i] = decode(n)
	}

	return gridgraph.NewGrid(rows, cols, decode(startNode), decode(goalNode), barriers)
}
