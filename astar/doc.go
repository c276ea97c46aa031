// Package astar implements the A* maze solver over a gridgraph.Grid.
//
// Overview:
//
//   - Solve(g, opts...) searches from g.Start() to g.Goal() with unit cost
//     per king move and the Manhattan distance as heuristic.
//   - The open set is an insertion-ordered slice; each pop takes the first
//     entry with the smallest f-score, so equal scores resolve in favour of
//     the oldest entry.
//   - Improved routes append a fresh entry; the superseded one is left in
//     the open set and expanded again when popped.
//
// Heuristic note:
//
//   - Diagonal moves cost 1, so Manhattan distance can overestimate the
//     remaining cost (|dx|+|dy| ≥ max(|dx|,|dy|)). Paths are shortest on
//     open ground and on most mazes, but not all: a barrier beside a
//     diagonal can make the search commit to a longer detour. Callers that
//     need a proven optimum should compare with package bfs.
//
// Result fields:
//
//   - Found, Path (start..goal) and TimeToGoal = len(Path)-1.
//   - Visited is the set of path cells once the goal is reached.
//   - Expanded counts pops, stale entries included.
//   - Nodes() reports the path as column-major node numbers.
//
// Complexity:
//
//   - Time:  O(N²) worst case for N = W×H cells (linear open-set scans).
//   - Space: O(N) plus stale open entries.
//
// Errors:
//
//   - ErrGridNil    grid pointer is nil
//   - hook errors   propagated from OnExpand, wrapped with %w
package astar
