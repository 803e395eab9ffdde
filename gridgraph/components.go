package gridgraph

// ConnectedComponents finds all contiguous regions of traversable cells
// (Terrain != Obstacle) under 4-connectivity.
// Returns a slice of components; each component is a slice of linear
// indices in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (col,row), use Dims.Point(idx).
//
// Time:   O(W·H).
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	_, comps := gg.label()
	return comps
}

// Reachable reports whether a 4-connected route of traversable cells joins a and b.
// Out-of-bounds or obstacle endpoints are never reachable.
// Complexity: O(W·H).
func (gg *GridGraph) Reachable(a, b Point) bool {
	if !gg.Dims.Contains(a) || !gg.Dims.Contains(b) {
		return false
	}
	labels, _ := gg.label()
	la, lb := labels[gg.Dims.Index(a)], labels[gg.Dims.Index(b)]

	return la >= 0 && la == lb
}

// label assigns every traversable cell the ordinal of its component
// (obstacles get -1) and collects the members of each component.
func (gg *GridGraph) label() ([]int, [][]int) {
	labels := make([]int, len(gg.Nodes))
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int
	buf := make([]int, 0, 4)

	for i := range gg.Nodes {
		if gg.Nodes[i].IsObstacle() || labels[i] >= 0 {
			continue
		}
		id := len(comps)
		labels[i] = id
		// BFS to collect component
		queue := []int{i}
		for qi := 0; qi < len(queue); qi++ {
			buf = gg.Neighbors(queue[qi], buf[:0])
			for _, v := range buf {
				if gg.Nodes[v].IsObstacle() || labels[v] >= 0 {
					continue
				}
				labels[v] = id
				queue = append(queue, v)
			}
		}
		comps = append(comps, queue)
	}

	return labels, comps
}
