// Package gridgraph treats a rectangular maze of cells as an implicit graph
// with king-move (8-neighbor) adjacency, the shared substrate of the dfs,
// astar and bfs solvers.
//
// What:
//
//   - Grid classifies each cell as Free, Barrier, Start or Goal.
//   - Grid is immutable once built: exactly one Start, one Goal, and a
//     barrier set disjoint from both.
//   - Neighbors enumerates up to 8 neighbors in a fixed directional order,
//     filters them, then re-sorts them by row-major key (y*cols + x).
//   - Components labels the king-connected regions of non-barrier cells.
//
// Node numbering:
//
//	Index(x, y) = y + x*rows     (column-major)
//	Coordinate(i) = (i / rows, i % rows)
//
// The column-major node number is what every reporting surface prints. The
// neighbor tie-break key is row-major. The two orderings are different on
// purpose and must not be unified.
//
// Heuristic:
//
//	Heuristic(a, b) = |ax-bx| + |ay-by|   (Manhattan)
//
// Every move, diagonal included, costs 1, so Manhattan distance can exceed
// the true remaining cost. A* over this grid keeps that heuristic as is.
//
// Complexity:
//
//   - Classify, InBounds, Index, Coordinate, Heuristic: O(1).
//   - Neighbors: O(1) (at most 8 candidates).
//   - Components: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: rows or cols is less than 1.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//   - ErrOverlap: a barrier coincides with the start or goal cell.
package gridgraph
