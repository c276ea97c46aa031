// Package bfs provides breadth-first search over a gridgraph.Grid,
// returning king-move shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	cell  gridgraph.Cell
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *gridgraph.Grid
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// Solve floods g from start, applying any number of functional Options.
// Returns ErrGridNil, ErrStartOutOfBounds or ErrStartBlocked for invalid
// input, ErrOptionViolation for bad options, or any context/hook error.
func Solve(g *gridgraph.Grid, start gridgraph.Cell, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start cell
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("bfs: start %v: %w", start, ErrStartOutOfBounds)
	}
	if g.IsBarrier(start) {
		return nil, fmt.Errorf("bfs: start %v: %w", start, ErrStartBlocked)
	}

	// Prepare walker
	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]gridgraph.Cell, 0, n),
			Depth:  make(map[gridgraph.Cell]int, n),
			Parent: make(map[gridgraph.Cell]gridgraph.Cell, n),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// enqueue records depth and parent for c, calls OnEnqueue, and adds it to
// the queue. A recorded depth doubles as the "seen" flag.
func (w *walker) enqueue(c gridgraph.Cell, d int, parent *gridgraph.Cell) {
	w.res.Depth[c] = d
	if parent != nil {
		w.res.Parent[c] = *parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{cell: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.cell)
		if err := w.opts.OnVisit(item.cell, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.cell, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.cell, w.seen) {
		parent := item.cell
		w.enqueue(nbr, nextDepth, &parent)
	}
}

// seen is the skip filter handed to gridgraph.Neighbors.
func (w *walker) seen(c gridgraph.Cell) bool {
	_, ok := w.res.Depth[c]

	return ok
}
