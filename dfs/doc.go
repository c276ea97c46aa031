// Package dfs implements the depth-first maze solver over a gridgraph.Grid.
//
// What:
//
//   - Solve(g, start, opts...): recursive depth-first search from start
//     towards g.Goal(). The first complete path found, following the
//     row-major neighbor order of gridgraph.Neighbors, is returned.
//   - Cells are never unmarked: once visited, a cell is not entered again,
//     even from a different branch.
//   - Pre-order (OnVisit) and backtrack (OnBacktrack) hooks.
//
// Guarantees:
//
//   - Found is true iff the goal is king-reachable from start over
//     non-barrier cells (DFS with a global visited set on an undirected
//     graph reaches every reachable cell).
//   - The path is NOT necessarily shortest.
//   - TimeToGoal counts every cell visited during the whole search, not the
//     path length.
//
// Complexity:
//
//   - Time:   O(W×H) cells, each enumerating at most 8 neighbors.
//   - Memory: O(W×H) for the visited set and the recursion stack.
//
// Errors:
//
//   - ErrGridNil            grid pointer is nil
//   - ErrStartOutOfBounds   start lies outside the grid
//   - ErrStartBlocked       start is a barrier cell
//   - hook errors           propagated from OnVisit or OnBacktrack
package dfs
