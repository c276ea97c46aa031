// Package dfs provides small helpers used by the solver.
package dfs

import "github.com/katalvlaran/lvmaze/gridgraph"

// reverse reverses s in place and returns it.
// Time Complexity: O(n).
func reverse(s []gridgraph.Cell) []gridgraph.Cell {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i] // swap from opposite ends
	}

	return s
}
