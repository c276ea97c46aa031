// Package astar defines the result, options and open-set entry types of the
// A* maze solver.
package astar

import (
	"errors"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors returned by Solve.
var (
	// ErrGridNil indicates that a nil *gridgraph.Grid was passed to Solve.
	ErrGridNil = errors.New("astar: grid is nil")
)

// Options configures the behavior of a single A* run.
//
// OnExpand – called once per entry removed from the open set, before the
//
//	goal check, with the column-major node number, its g-cost and
//	its f-score. A non-nil error aborts the search.
type Options struct {
	OnExpand func(index, g, f int) error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{OnExpand: nil}
}

// WithOnExpand installs fn as the per-pop hook.
func WithOnExpand(fn func(index, g, f int) error) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// entry is one element of the open set. Entries are never updated in
// place: a better route to the same node appends a new entry and the old
// one stays behind as a stale duplicate.
type entry struct {
	index int // column-major node number
	g     int // steps from start when the entry was pushed
	f     int // g + heuristic to goal
}

// Result captures the outcome of an A* run.
type Result struct {
	// Found reports whether the goal was popped from the open set.
	Found bool

	// Path lists the cells from start to goal inclusive; nil when !Found.
	Path []gridgraph.Cell

	// Visited holds exactly the cells of Path once the goal is reached, and
	// is empty otherwise.
	Visited map[gridgraph.Cell]bool

	// TimeToGoal is the number of moves on Path (len(Path)-1); 0 when !Found.
	TimeToGoal int

	// Expanded counts entries removed from the open set, stale ones included.
	Expanded int

	rows int
}

// Nodes returns Path as column-major node numbers.
func (r *Result) Nodes() []int {
	if r == nil || len(r.Path) == 0 {
		return nil
	}
	out := make([]int, len(r.Path))
	for i, c := range r.Path {
		out[i] = c.Y + c.X*r.rows
	}

	return out
}
