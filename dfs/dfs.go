// Package dfs implements depth-first search from a start cell to the goal of
// a gridgraph.Grid. Neighbors come from gridgraph.Neighbors with the visited
// set as skip filter, so the row-major re-sort decides which branch is tried
// first.
//
// Key features:
//   - Solve(g, start, opts...): first path found, not necessarily shortest
//   - Visited cells stay visited after a failed branch
//   - Hooks: OnVisit (pre-order) & OnBacktrack with error aborts
//
// Complexity:
//
//   - Time:   O(W×H).
//   - Memory: O(W×H) for recursion stack and visited set.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// walker encapsulates state during DFS.
type walker struct {
	grid *gridgraph.Grid // underlying maze, read-only
	opts Options         // hooks
	res  *Result         // result collector
	path []gridgraph.Cell
}

// Solve performs depth-first search on g from start to g.Goal().
// Returns a Result (Found=false with nil Path if the goal is unreachable) or
// an error for invalid input or a failing hook.
func Solve(g *gridgraph.Grid, start gridgraph.Cell, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start.X, start.Y) {
		return nil, fmt.Errorf("dfs: start %v: %w", start, ErrStartOutOfBounds)
	}
	if g.IsBarrier(start) {
		return nil, fmt.Errorf("dfs: start %v: %w", start, ErrStartBlocked)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	res := &Result{
		Visited: make(map[gridgraph.Cell]bool, g.Len()),
		Order:   make([]gridgraph.Cell, 0, g.Len()),
	}
	w := &walker{grid: g, opts: dopts, res: res}

	// 4. Traverse
	found, err := w.traverse(start)
	if err != nil {
		return res, err
	}

	// 5. The path was collected goal-first while unwinding.
	if found {
		res.Found = true
		res.Path = reverse(w.path)
	}

	return res, nil
}

// traverse visits c and recurses into its unvisited neighbors in row-major
// order, stopping at the first one that reaches the goal.
func (w *walker) traverse(c gridgraph.Cell) (bool, error) {
	// 1. Mark visited and count the step
	w.res.Visited[c] = true
	w.res.TimeToGoal++
	w.res.Order = append(w.res.Order, c)

	// 2. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(c); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", c, err)
		}
	}

	// 3. Goal check
	if c == w.grid.Goal() {
		w.path = append(w.path, c)
		return true, nil
	}

	// 4. Explore each neighbor; the list is fixed on entry, so re-check
	//    visited before recursing.
	for _, n := range w.grid.Neighbors(c, w.visited) {
		if w.res.Visited[n] {
			continue
		}
		found, err := w.traverse(n)
		if err != nil {
			return false, err
		}
		if found {
			w.path = append(w.path, c)
			return true, nil
		}
	}

	// 5. Backtrack hook
	if w.opts.OnBacktrack != nil {
		if err := w.opts.OnBacktrack(c); err != nil {
			return false, fmt.Errorf("dfs: OnBacktrack hook for %v: %w", c, err)
		}
	}

	return false, nil
}

// visited is the skip filter handed to gridgraph.Neighbors.
func (w *walker) visited(c gridgraph.Cell) bool {
	return w.res.Visited[c]
}
