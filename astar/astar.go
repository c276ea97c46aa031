package astar

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Solve runs A* on g from g.Start() to g.Goal() with unit cost per king move
// and the grid's Manhattan heuristic.
//
// Returns:
//
//   - Found=false with a nil Path once the open set runs dry.
//   - On success, Path is start..goal, TimeToGoal = len(Path)-1 and Visited
//     is overwritten with the path cells.
//   - err: ErrGridNil, or a wrapped hook error.
//
// Selection order:
//
//   - The open set is a plain slice scanned linearly; the first entry with
//     the minimum f wins, so ties go to the oldest entry.
//   - Removal keeps the relative order of the remaining entries.
//   - Neighbors are taken from gridgraph.Neighbors with no skip filter; a
//     node may be reopened whenever a strictly smaller g is found.
//
// Complexity:
//
//   - Time:  O(N²) in the worst case for N = W×H, from the linear scans.
//   - Space: O(N) for g-costs and predecessors, plus stale open entries.
func Solve(g *gridgraph.Grid, opts ...Option) (*Result, error) {
	// 1) Validate grid
	if g == nil {
		return nil, ErrGridNil
	}

	// 2) Apply options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Initialize runner
	r := &runner{
		grid:    g,
		options: cfg,
		start:   g.CellIndex(g.Start()),
		goal:    g.CellIndex(g.Goal()),
		gCost:   make(map[int]int, g.Len()),
		prev:    make(map[int]int, g.Len()),
		res: &Result{
			Visited: make(map[gridgraph.Cell]bool),
			rows:    g.Rows(),
		},
	}
	r.init()

	// 4) Main loop
	if err := r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid    *gridgraph.Grid // read-only maze
	options Options         // hooks
	start   int             // column-major number of the start cell
	goal    int             // column-major number of the goal cell
	open    []entry         // insertion-ordered open set
	gCost   map[int]int     // best known steps from start
	prev    map[int]int     // predecessor on the best known route
	res     *Result         // result collector
}

// init seeds the open set with the start node at g = f = 0.
func (r *runner) init() {
	r.gCost[r.start] = 0
	r.open = append(r.open, entry{index: r.start, g: 0, f: 0})
}

// process pops entries until the goal is reached or the open set is empty.
func (r *runner) process() error {
	for len(r.open) > 0 {
		// 1) Take the first entry with minimum f.
		cur := r.pop()
		r.res.Expanded++

		if r.options.OnExpand != nil {
			if err := r.options.OnExpand(cur.index, cur.g, cur.f); err != nil {
				return fmt.Errorf("astar: OnExpand hook for node %d: %w", cur.index, err)
			}
		}

		// 2) Goal check on pop.
		if cur.index == r.goal {
			r.finish()
			return nil
		}

		// 3) Relax every free neighbor.
		r.relax(cur)
	}

	return nil
}

// pop removes and returns the first entry with the smallest f.
// Complexity: O(len(open)).
func (r *runner) pop() entry {
	best := 0
	for i := 1; i < len(r.open); i++ {
		if r.open[i].f < r.open[best].f {
			best = i
		}
	}
	e := r.open[best]
	r.open = append(r.open[:best], r.open[best+1:]...)

	return e
}

// relax pushes each neighbor of cur whose route through cur is new or
// strictly shorter than the one on record.
func (r *runner) relax(cur entry) {
	goal := r.grid.Goal()
	for _, n := range r.grid.Neighbors(r.grid.CellAt(cur.index), nil) {
		ni := r.grid.CellIndex(n)
		tentative := cur.g + 1
		if known, ok := r.gCost[ni]; ok && tentative >= known {
			continue
		}
		r.gCost[ni] = tentative
		r.open = append(r.open, entry{
			index: ni,
			g:     tentative,
			f:     tentative + r.grid.Heuristic(n, goal),
		})
		r.prev[ni] = cur.index
	}
}

// finish rebuilds the path from the predecessor links and fills the
// success fields of the result.
func (r *runner) finish() {
	nodes := reconstructPath(r.prev, r.goal, r.start)
	path := make([]gridgraph.Cell, len(nodes))
	visited := make(map[gridgraph.Cell]bool, len(nodes))
	for i, idx := range nodes {
		c := r.grid.CellAt(idx)
		path[i] = c
		visited[c] = true
	}

	r.res.Found = true
	r.res.Path = path
	r.res.Visited = visited
	r.res.TimeToGoal = len(path) - 1
}

// reconstructPath walks prev from current back to start and returns the
// node numbers in start..current order.
func reconstructPath(prev map[int]int, current, start int) []int {
	path := []int{current}
	for current != start {
		p, ok := prev[current]
		if !ok {
			break
		}
		path = append(path, p)
		current = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
