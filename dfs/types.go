// Package dfs defines types and options for the depth-first maze solver,
// including pre-order and backtrack hooks.
package dfs

import (
	"errors"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

var (
	// ErrGridNil is returned when a nil *gridgraph.Grid is passed to Solve.
	ErrGridNil = errors.New("dfs: grid is nil")

	// ErrStartOutOfBounds indicates that the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("dfs: start cell out of bounds")

	// ErrStartBlocked indicates that the start cell is a barrier.
	ErrStartBlocked = errors.New("dfs: start cell is a barrier")
)

// Option configures optional behavior of Solve.
type Option func(*Options)

// Options holds configurable hooks for a DFS run.
// Complexity remains O(W×H) when hooks are O(1).
type Options struct {
	// OnVisit, if non-nil, is invoked when a cell is marked visited (pre-order).
	// Returning an error aborts the search with that error.
	OnVisit func(c gridgraph.Cell) error

	// OnBacktrack, if non-nil, is invoked when every neighbor of a cell failed
	// to lead to the goal. Returning an error aborts the search.
	OnBacktrack func(c gridgraph.Cell) error
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions() Options {
	return Options{
		OnVisit:     nil,
		OnBacktrack: nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as a backtrack hook.
func WithOnBacktrack(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// Result captures the outcome of a DFS run.
type Result struct {
	// Found reports whether the goal was reached.
	Found bool

	// Path lists the cells from start to goal inclusive; nil when !Found.
	Path []gridgraph.Cell

	// Visited flags every cell marked during the search.
	Visited map[gridgraph.Cell]bool

	// Order records cells in the sequence they were visited (pre-order).
	Order []gridgraph.Cell

	// TimeToGoal counts the cells visited during the whole search.
	TimeToGoal int
}
