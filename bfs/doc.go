// Package bfs provides a breadth-first flood over a gridgraph.Grid,
// returning exact king-move distances, parent links, and visit order.
//
// What
//
//   - Explore non-barrier cells in non-decreasing move count from a start cell.
//   - Neighbors come from gridgraph.Neighbors, so each layer is enqueued in
//     the same row-major order the dfs and astar solvers use.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → moves from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - PathTo(dest) reconstructs a shortest path.
//
// Why
//
//   - Ground truth for A*: on a uniform-cost grid the BFS depth of the goal
//     is the minimum number of king moves.
//   - Reachability oracle for DFS and for maze generation checks.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N)   (each cell dequeued once, at most 8 neighbors)
//   - Memory: O(N)   (queue, Depth map, Parent map)
//
// Options
//
//   - WithContext(ctx):       cancellation, checked once per dequeued cell.
//   - WithMaxDepth(d):        stop expanding beyond depth d (>0); 0 means no limit.
//   - WithOnEnqueue(fn):      hook before a cell is enqueued.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrStartOutOfBounds   if start lies outside the grid.
//   - ErrStartBlocked       if start is a barrier.
//   - ErrOptionViolation    if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath             from PathTo when dest was not reached.
//   - context errors and wrapped hook errors.
package bfs
