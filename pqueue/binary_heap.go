package pqueue

import "container/heap"

// BinaryHeap is a standard min-heap keyed by priority, O(log n) push/pop.
// It is the reference Queue implementation: always correct, no tuning
// parameters. Built on container/heap, the same idiom the rest of this
// codebase's ancestor line (dijkstra, prim_kruskal) uses for every heap.
type BinaryHeap struct {
	items  heapItems
	pushes uint64
	pops   uint64
}

// NewBinaryHeap returns an empty BinaryHeap ready for use.
func NewBinaryHeap() *BinaryHeap {
	bh := &BinaryHeap{}
	heap.Init(&bh.items)
	return bh
}

// Push inserts id with the given priority. O(log n).
func (bh *BinaryHeap) Push(id int, priority float64) {
	heap.Push(&bh.items, heapEntry{id: id, priority: priority})
	bh.pushes++
}

// Pop removes and returns the minimum-priority id. O(log n).
func (bh *BinaryHeap) Pop() (int, bool) {
	if bh.items.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&bh.items).(heapEntry)
	bh.pops++
	return e.id, true
}

// Empty reports whether the heap holds no entries.
func (bh *BinaryHeap) Empty() bool { return bh.items.Len() == 0 }

// Size returns the number of entries currently held.
func (bh *BinaryHeap) Size() int { return bh.items.Len() }

// PushCount returns the number of Push calls since construction or reset.
func (bh *BinaryHeap) PushCount() uint64 { return bh.pushes }

// PopCount returns the number of successful Pop calls since construction
// or reset.
func (bh *BinaryHeap) PopCount() uint64 { return bh.pops }

// ResetStats zeroes the push/pop counters without touching queue contents.
func (bh *BinaryHeap) ResetStats() { bh.pushes, bh.pops = 0, 0 }

type heapEntry struct {
	id       int
	priority float64
}

// heapItems implements container/heap.Interface over heapEntry, ordered by
// priority ascending (min-heap).
type heapItems []heapEntry

func (h heapItems) Len() int            { return len(h) }
func (h heapItems) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h heapItems) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *heapItems) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *heapItems) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
