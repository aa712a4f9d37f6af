package gridgraph

// ConnectedComponents finds all contiguous regions ("islands") of walkable
// cells (CellValues[y][x] ≥ LandThreshold), according to gg.Conn
// connectivity and the corner-cutting policy, so that islands match the
// edges produced by ToNavGraph.
// Returns a slice of components; each component is a slice of cell-indices
// (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue // blocked
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Walkable(vx, vy) || !gg.diagonalOpen(ux, uy, d[0], d[1]) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ComponentLabels returns, for every cell index, the position of its island
// in ConnectedComponents(), or -1 for blocked cells.
func (gg *GridGraph) ComponentLabels() []int {
	labels := make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			labels[idx] = c
		}
	}

	return labels
}
