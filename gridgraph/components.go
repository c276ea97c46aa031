package gridgraph

// Components finds all king-connected regions of non-barrier cells.
// Returns a slice of components; each component is a slice of column-major
// node numbers in discovery order. Components are seeded in column-major
// order, so the component holding node 0 (if free) comes first.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·8).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	total := g.Len()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || g.kinds[i0] == Barrier {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for _, n := range g.Neighbors(g.CellAt(u), nil) {
				vi := g.CellIndex(n)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// ComponentOf returns a per-node component label slice: labels[i] is the
// position of node i in Components(), or -1 for barrier cells.
// Complexity: O(W·H·8).
func (g *Grid) ComponentOf() []int {
	labels := make([]int, g.Len())
	for i := range labels {
		labels[i] = -1
	}
	for ci, comp := range g.Components() {
		for _, idx := range comp {
			labels[idx] = ci
		}
	}

	return labels
}

// Connected reports whether a and b lie in the same king-connected region
// of non-barrier cells. Out-of-bounds or barrier cells are never connected.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return false
	}
	labels := g.ComponentOf()
	la, lb := labels[g.CellIndex(a)], labels[g.CellIndex(b)]

	return la >= 0 && la == lb
}
