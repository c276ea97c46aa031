// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvmaze.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside [0,cols)×[0,rows).
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrOverlap indicates a barrier placed on the start or goal cell.
	ErrOverlap = errors.New("gridgraph: barrier overlaps start or goal")
)

// Kind classifies a single grid cell.
type Kind uint8

const (
	// Free is an open, traversable cell.
	Free Kind = iota
	// Barrier is an impassable cell.
	Barrier
	// Start is the unique start cell.
	Start
	// Goal is the unique goal cell.
	Goal
)

// String returns the one-letter symbol used by text renderings.
func (k Kind) String() string {
	switch k {
	case Barrier:
		return "X"
	case Start:
		return "S"
	case Goal:
		return "G"
	default:
		return "."
	}
}

// Cell is a grid coordinate: X is the column, Y is the row, both 0-based.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// neighborOffsets is the fixed enumeration order:
// Up, Left, Right, Down, Up-Left, Up-Right, Down-Left, Down-Right.
var neighborOffsets = [8][2]int{
	{0, -1}, {-1, 0}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Grid is a rows×cols maze. It is immutable once built by NewGrid.
// kinds is addressed by the column-major index y + x*rows.
type Grid struct {
	rows, cols int
	kinds      []Kind
	start      Cell
	goal       Cell
	barriers   []Cell // sorted by RowMajorKey
}
