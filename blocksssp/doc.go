// Package blocksssp implements the block-partitioned single-source
// shortest-path engine (the "DMM-style" SSSP): no global priority queue,
// only block-local partial sorting on Pull. Exact shortest paths are still
// guaranteed because a closed vertex is reopened and re-inserted whenever a
// shorter distance reaches it, and the search runs until the structure is
// empty rather than stopping at the goal's first pop.
package blocksssp
