// Package pqueue provides the priority-queue family shared by PathLab's
// search engines: a common Queue capability set, and four concrete
// backings with different ordering disciplines.
//
//   - BinaryHeap: a standard O(log n) min-heap; the reference implementation.
//   - POQueue: a windowed bucket queue that exploits the monotone
//     non-decreasing pop order Dijkstra/A* produce under a consistent
//     heuristic, trading global order for O(1) amortized push/pop.
//   - EfficientDataStructure: a block-partitioned structure that only
//     locally sorts one block at a time, for consumers (Block-SSSP) that
//     process batches rather than one global minimum at a time.
//   - AdaptiveDataStructure: a capped min-heap sibling of
//     EfficientDataStructure for callers that want block-sized pulls while
//     still guaranteeing each pulled batch is globally minimal.
//
// All four tolerate stale entries: a key may be pushed more than once with
// different priorities, and the consumer (the search loop) is responsible
// for filtering stale pops via its own closed-set.
package pqueue
