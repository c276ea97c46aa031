// Package gridgraph provides the maze grid shared by all solvers:
//
//   - O(1) cell classification and bounds checks
//   - Column-major node numbering and its inverse
//   - The Manhattan heuristic
//   - The king-move Neighbor Enumerator with row-major tie-break
//
// Barrier cells are never returned as neighbors.
package gridgraph

import (
	"fmt"
	"sort"
)

// NewGrid constructs a rows×cols Grid with the given start, goal and barriers.
// Duplicate barriers collapse to one. start == goal is permitted.
// Returns ErrEmptyGrid if rows or cols is below 1,
// ErrOutOfBounds if start, goal or any barrier lies outside the grid,
// ErrOverlap if a barrier coincides with start or goal.
// Complexity: O(W×H + B log B) time, O(W×H) memory.
func NewGrid(rows, cols int, start, goal Cell, barriers []Cell) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		rows:  rows,
		cols:  cols,
		kinds: make([]Kind, rows*cols),
		start: start,
		goal:  goal,
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("gridgraph: start %v: %w", start, ErrOutOfBounds)
	}
	if !g.InBounds(goal.X, goal.Y) {
		return nil, fmt.Errorf("gridgraph: goal %v: %w", goal, ErrOutOfBounds)
	}

	for _, b := range barriers {
		if !g.InBounds(b.X, b.Y) {
			return nil, fmt.Errorf("gridgraph: barrier %v: %w", b, ErrOutOfBounds)
		}
		if b == start || b == goal {
			return nil, fmt.Errorf("gridgraph: barrier %v: %w", b, ErrOverlap)
		}
		i := g.Index(b.X, b.Y)
		if g.kinds[i] == Barrier {
			continue
		}
		g.kinds[i] = Barrier
		g.barriers = append(g.barriers, b)
	}
	sort.Slice(g.barriers, func(i, j int) bool {
		return g.RowMajorKey(g.barriers[i]) < g.RowMajorKey(g.barriers[j])
	})

	// Goal is written last so a start==goal grid classifies as Goal.
	g.kinds[g.Index(start.X, start.Y)] = Start
	g.kinds[g.Index(goal.X, goal.Y)] = Goal

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// Barriers returns a copy of the barrier cells in row-major order.
func (g *Grid) Barriers() []Cell {
	out := make([]Cell, len(g.barriers))
	copy(out, g.barriers)

	return out
}

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.rows * g.cols }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Classify returns the Kind of cell (x,y).
// Returns ErrOutOfBounds for coordinates outside the grid.
// Complexity: O(1).
func (g *Grid) Classify(x, y int) (Kind, error) {
	if !g.InBounds(x, y) {
		return Free, fmt.Errorf("gridgraph: classify (%d,%d): %w", x, y, ErrOutOfBounds)
	}

	return g.kinds[g.Index(x, y)], nil
}

// IsBarrier reports whether c is an in-bounds barrier cell.
func (g *Grid) IsBarrier(c Cell) bool {
	return g.InBounds(c.X, c.Y) && g.kinds[g.Index(c.X, c.Y)] == Barrier
}

// Index maps (x,y) to its column-major node number: y + x*rows.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y + x*g.rows
}

// CellIndex is Index for a Cell.
func (g *Grid) CellIndex(c Cell) int {
	return g.Index(c.X, c.Y)
}

// Coordinate converts a column-major node number back to (x,y).
// idx must lie in [0, Len()); outside that range the result is not a cell
// of the grid and is not the inverse of Index.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx / g.rows, idx % g.rows
}

// CellAt is Coordinate returning a Cell.
func (g *Grid) CellAt(idx int) Cell {
	x, y := g.Coordinate(idx)

	return Cell{X: x, Y: y}
}

// RowMajorKey returns y*cols + x, the neighbor tie-break key.
func (g *Grid) RowMajorKey(c Cell) int {
	return c.Y*g.cols + c.X
}

// Heuristic returns the Manhattan distance between a and b.
// Diagonal moves cost 1, so this is not a lower bound on every grid;
// it is kept as the A* estimate regardless.
func (g *Grid) Heuristic(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Offsets returns the directional enumeration order used by Neighbors.
func Offsets() [8][2]int {
	return neighborOffsets
}

// Neighbors returns the valid king-move neighbors of c sorted by RowMajorKey.
// A candidate is valid iff it is in bounds, not a Barrier, and skip(candidate)
// is false; a nil skip accepts every candidate.
// Candidates are generated in Offsets order, filtered, and then re-sorted,
// so the row-major key is the effective tie-break.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell, skip func(Cell) bool) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if !g.InBounds(n.X, n.Y) {
			continue
		}
		if g.kinds[g.Index(n.X, n.Y)] == Barrier {
			continue
		}
		if skip != nil && skip(n) {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return g.RowMajorKey(out[i]) < g.RowMajorKey(out[j])
	})

	return out
}

// Adjacent reports whether a and b are distinct cells one king-move apart.
func Adjacent(a, b Cell) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)

	return a != b && dx <= 1 && dy <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
