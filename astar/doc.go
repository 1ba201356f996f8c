// Package astar implements A* on a gridmap.GridMap as reweighted Dijkstra:
// the priority key is f = g + h rather than g alone, using a pluggable
// heuristic.Heuristic and a pluggable pqueue.Queue backing. With an
// admissible, consistent heuristic, the goal's first non-stale pop is
// optimal, identical to plain Dijkstra's termination rule.
package astar
