package pqueue

import (
	"math"
	"sort"
)

// Item is a (vertex, distance) pair, the unit BatchPrepend accepts.
type Item struct {
	V int
	D float64
}

// dsItem is a (vertex, distance) pair held in a block.
type dsItem struct {
	v int
	d float64
}

// EfficientDataStructure is a block-partitioned structure for consumers
// (Block-SSSP) that process a batch of vertices at a time instead of one
// global minimum. It holds two stores: batch_blocks, a FIFO of unsorted
// blocks pushed wholesale via BatchPrepend and drained first, and
// sorted_blocks, a LIFO of blocks grown one item at a time via Insert (each
// capped at BlockSize), drained after batch_blocks is empty. Items with
// d >= Bound or non-finite d are dropped silently on Insert.
//
// Unlike a global priority queue, Pull does not guarantee the returned
// vertices are globally minimal — only minimal within the one block it
// drained. Consumers must re-check each popped vertex's distance against
// their own dist[] before trusting it.
type EfficientDataStructure struct {
	blockSize int
	bound     float64

	batchBlocks  [][]dsItem // FIFO, drained first
	sortedBlocks [][]dsItem // LIFO, drained second
}

// NewEfficientDataStructure returns an empty structure with the given block
// size and drop bound.
func NewEfficientDataStructure(blockSize int, bound float64) *EfficientDataStructure {
	return &EfficientDataStructure{blockSize: blockSize, bound: bound}
}

// Insert appends (v,d) to the current sorted_blocks top block, opening a
// new block if the current one is full or absent. Items with d >= Bound or
// non-finite d are dropped.
func (e *EfficientDataStructure) Insert(v int, d float64) {
	if d >= e.bound || math.IsInf(d, 0) || math.IsNaN(d) {
		return
	}
	n := len(e.sortedBlocks)
	if n == 0 || len(e.sortedBlocks[n-1]) >= e.blockSize {
		e.sortedBlocks = append(e.sortedBlocks, make([]dsItem, 0, e.blockSize))
		n++
	}
	e.sortedBlocks[n-1] = append(e.sortedBlocks[n-1], dsItem{v: v, d: d})
}

// BatchPrepend pushes a whole unsorted block of (vertex, distance) pairs to
// the front of batch_blocks.
func (e *EfficientDataStructure) BatchPrepend(items []Item) {
	if len(items) == 0 {
		return
	}
	block := make([]dsItem, len(items))
	for i, it := range items {
		block[i] = dsItem{v: it.V, d: it.D}
	}
	e.batchBlocks = append([][]dsItem{block}, e.batchBlocks...)
}

// Pull pops one block — FIFO from batch_blocks if non-empty, else LIFO from
// sorted_blocks — sorts it ascending by distance, and returns the
// vertex-only projection along with the best remaining distance across all
// unpulled items (or Bound if none remain).
func (e *EfficientDataStructure) Pull() (minRemaining float64, vertices []int) {
	var blk []dsItem
	if len(e.batchBlocks) > 0 {
		blk = e.batchBlocks[0]
		e.batchBlocks = e.batchBlocks[1:]
	} else if len(e.sortedBlocks) > 0 {
		n := len(e.sortedBlocks)
		blk = e.sortedBlocks[n-1]
		e.sortedBlocks = e.sortedBlocks[:n-1]
	} else {
		return e.bound, nil
	}

	sort.Slice(blk, func(i, j int) bool { return blk[i].d < blk[j].d })
	vertices = make([]int, len(blk))
	for i, it := range blk {
		vertices[i] = it.v
	}

	if m, ok := e.peekMin(); ok {
		return m, vertices
	}
	return e.bound, vertices
}

// PeekMin does an O(n) scan of all currently held items and returns the
// smallest distance, or Bound if the structure is empty. Intended for
// pacing only, not correctness-critical lookups.
func (e *EfficientDataStructure) PeekMin() float64 {
	if m, ok := e.peekMin(); ok {
		return m
	}
	return e.bound
}

func (e *EfficientDataStructure) peekMin() (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, blk := range e.batchBlocks {
		for _, it := range blk {
			if it.d < best {
				best = it.d
				found = true
			}
		}
	}
	for _, blk := range e.sortedBlocks {
		for _, it := range blk {
			if it.d < best {
				best = it.d
				found = true
			}
		}
	}
	return best, found
}

// IsEmpty reports whether both batch_blocks and sorted_blocks hold no items.
func (e *EfficientDataStructure) IsEmpty() bool {
	return len(e.batchBlocks) == 0 && len(e.sortedBlocks) == 0
}
