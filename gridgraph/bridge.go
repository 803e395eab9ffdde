package gridgraph

import (
	"container/list"
)

// Bridge finds the fewest obstacle cells that, once cleared, join the island
// holding a to the island holding b. The cells are returned in route order
// from a's side. Both endpoints must be in-bounds traversable cells; when they
// already share an island the result is empty.
//
// Behavior:
//  1. Label islands; return early when a and b share one.
//  2. Multi-source 0–1 BFS from every cell of a's island:
//     • Moving into a traversable cell → cost 0 (front of deque)
//     • Moving into an obstacle        → cost 1 (back of deque)
//  3. Stop at the first popped cell of b's island.
//  4. Walk predecessors back and keep the obstacles on the route.
//
// Complexity: O(W·H).
// Memory:     O(W·H) for distance, predecessor and label slices.
func (gg *GridGraph) Bridge(a, b Point) ([]int, error) {
	if !gg.Dims.Contains(a) || !gg.Dims.Contains(b) ||
		gg.Node(a).IsObstacle() || gg.Node(b).IsObstacle() {
		return nil, ErrBridgeEndpoint
	}
	labels, comps := gg.label()
	src, dst := labels[gg.Dims.Index(a)], labels[gg.Dims.Index(b)]
	if src == dst {
		return nil, nil
	}

	n := len(gg.Nodes)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoParent
	}

	dq := list.New()
	for _, i := range comps[src] {
		dist[i] = 0
		dq.PushBack(i)
	}

	goal := NoParent
	buf := make([]int, 0, 4)
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if labels[u] == dst {
			goal = u
			break
		}
		buf = gg.Neighbors(u, buf[:0])
		for _, v := range buf {
			step := 0
			if gg.Nodes[v].IsObstacle() {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	// every cell is reachable once obstacles may be cleared
	var cleared []int
	for at := goal; at != NoParent; at = prev[at] {
		if gg.Nodes[at].IsObstacle() {
			cleared = append(cleared, at)
		}
	}
	for i, j := 0, len(cleared)-1; i < j; i, j = i+1, j-1 {
		cleared[i], cleared[j] = cleared[j], cleared[i]
	}

	return cleared, nil
}
