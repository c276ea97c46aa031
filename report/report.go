// Package report condenses a solver run into a Summary and prints it in a
// fixed, line-oriented format. Node numbers are column-major, as everywhere
// else in lvmaze.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/katalvlaran/lvmaze/astar"
	"github.com/katalvlaran/lvmaze/dfs"
	"github.com/katalvlaran/lvmaze/gridgraph"
)

// Sentinel errors returned by Write.
var (
	ErrGridNil    = errors.New("report: grid is nil")
	ErrSummaryNil = errors.New("report: summary is nil")
)

// Summary is the solver-independent view of one run.
type Summary struct {
	Name       string
	Found      bool
	Path       []gridgraph.Cell
	Visited    []gridgraph.Cell // row-major order
	TimeToGoal int
}

// FromDFS builds a Summary named "DFS". A nil result yields nil.
func FromDFS(r *dfs.Result) *Summary {
	if r == nil {
		return nil
	}

	return &Summary{
		Name:       "DFS",
		Found:      r.Found,
		Path:       r.Path,
		Visited:    cells(r.Visited),
		TimeToGoal: r.TimeToGoal,
	}
}

// FromAStar builds a Summary named "A*". A nil result yields nil.
func FromAStar(r *astar.Result) *Summary {
	if r == nil {
		return nil
	}

	return &Summary{
		Name:       "A*",
		Found:      r.Found,
		Path:       r.Path,
		Visited:    cells(r.Visited),
		TimeToGoal: r.TimeToGoal,
	}
}

// cells flattens a visited set into row-major order.
func cells(set map[gridgraph.Cell]bool) []gridgraph.Cell {
	out := make([]gridgraph.Cell, 0, len(set))
	for c, ok := range set {
		if ok {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Write prints s for grid g:
//
//	<Name> Goal reached!            (or "Goal not reachable.")
//	<Name> Visited Nodes: [...]     ascending node numbers
//	<Name> Time to Goal: N minutes
//	<Name> Final Path: [...]        node numbers, start first
//	<Name> Final Path: [...]        (x,y) cells
//	<Name> Final Path Length: N     cells on the path
func Write(w io.Writer, g *gridgraph.Grid, s *Summary) error {
	if g == nil {
		return ErrGridNil
	}
	if s == nil {
		return ErrSummaryNil
	}

	visited := nodes(g, s.Visited)
	sort.Ints(visited)

	bw := bufio.NewWriter(w)
	if s.Found {
		fmt.Fprintf(bw, "%s Goal reached!\n", s.Name)
	} else {
		fmt.Fprintf(bw, "%s Goal not reachable.\n", s.Name)
	}
	fmt.Fprintf(bw, "%s Visited Nodes: %v\n", s.Name, visited)
	fmt.Fprintf(bw, "%s Time to Goal: %d minutes\n", s.Name, s.TimeToGoal)
	fmt.Fprintf(bw, "%s Final Path: %v\n", s.Name, nodes(g, s.Path))
	fmt.Fprintf(bw, "%s Final Path: %v\n", s.Name, s.Path)
	fmt.Fprintf(bw, "%s Final Path Length: %d\n", s.Name, len(s.Path))

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: %s: %w", s.Name, err)
	}

	return nil
}

func nodes(g *gridgraph.Grid, cs []gridgraph.Cell) []int {
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = g.CellIndex(c)
	}

	return out
}
