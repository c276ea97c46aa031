// Package lvmaze is a small grid-maze laboratory: build a rectangular maze
// with a start, a goal and a few barriers, then race depth-first search
// against A* across it.
//
// What is inside:
//
//	gridgraph/   Grid, cell classification, column-major node numbers,
//	             Manhattan heuristic and the 8-way neighbor enumerator
//	builder/     random maze factory with injectable RNG, text layouts
//	dfs/         depth-first solver (some path, never revisits a cell)
//	astar/       A* solver (linear open-set scan, oldest-first tie-break)
//	bfs/         breadth-first flood, the reference for shortest distances
//	render/      text drawing with an ANSI-highlighted path
//	report/      per-solver summary lines
//	cmd/lvmaze/  command-line driver
//
// Movement model:
//
//	Eight king moves, each costing 1. Neighbors are always returned in
//	row-major order (top-left to bottom-right), which fixes the order in
//	which DFS tries branches and A* breaks ties.
//
// Quick ASCII example (node numbers are y + x*rows):
//
//	S 3   6
//	X X   7
//	G 5   8
//
//	go run github.com/katalvlaran/lvmaze/cmd/lvmaze -rows 8 -cols 8 -barriers 10
package lvmaze
