// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// gridmap.GridMap: classical lazy-deletion Dijkstra, single-threaded,
// single-query, with a pluggable pqueue.Queue backing.
//
// Complexity: O(N log N) amortized with the default BinaryHeap backing,
// where N = W*H; each node is expanded at most once, each relaxation may
// push a duplicate entry (lazy decrease-key).
//
// Errors: Solve never returns a Go error. Out-of-range or blocked
// start/goal coordinates yield a fully zeroed PathResult{Found: false}
// (BadInput); an unreachable goal yields Found: false with zero cost and an
// empty path, but Stats count the work done (NoPath) — solve() has no
// exceptions to propagate.
package dijkstra
