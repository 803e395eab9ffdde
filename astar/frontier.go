package astar

import (
	"container/heap"

	"github.com/katalvlaran/lvpath/gridgraph"
)

// frontier is the open set: a min-heap of arena indices ordered by
// (Total, H, Index) ascending. The Index tie-break makes the order strict,
// so pop order is deterministic.
//
// pos[i] is the heap slot of arena node i, or -1 when absent, which lets a
// node be removed before its key changes.
type frontier struct {
	nodes []gridgraph.Node
	items []int
	pos   []int
}

func newFrontier(nodes []gridgraph.Node) *frontier {
	pos := make([]int, len(nodes))
	for i := range pos {
		pos[i] = -1
	}
	return &frontier{nodes: nodes, pos: pos}
}

// before is the frontier's total order.
func before(a, b *gridgraph.Node) bool {
	if a.Total != b.Total {
		return a.Total < b.Total
	}
	if a.H != b.H {
		return a.H < b.H
	}
	return a.Index < b.Index
}

// Len returns the number of nodes in the frontier.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by before.
func (f *frontier) Less(i, j int) bool {
	return before(&f.nodes[f.items[i]], &f.nodes[f.items[j]])
}

// Swap swaps two slots and keeps pos in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i]] = i
	f.pos[f.items[j]] = j
}

// Push is called by heap.Push; x must be an arena index.
func (f *frontier) Push(x interface{}) {
	id := x.(int)
	f.pos[id] = len(f.items)
	f.items = append(f.items, id)
}

// Pop is called by heap.Pop.
func (f *frontier) Pop() interface{} {
	n := len(f.items) - 1
	id := f.items[n]
	f.items = f.items[:n]
	f.pos[id] = -1

	return id
}

// insert adds arena node id. Its Total must already be current.
func (f *frontier) insert(id int) { heap.Push(f, id) }

// popMin removes and returns the least node by before.
func (f *frontier) popMin() int { return heap.Pop(f).(int) }

// remove drops arena node id if present.
func (f *frontier) remove(id int) {
	if p := f.pos[id]; p >= 0 {
		heap.Remove(f, p)
	}
}
