// Package engine holds the node/edge/stats contract shared by PathLab's
// three search engines (dijkstra, astar, blocksssp): PathResult and
// SearchStats, the 4-/8-connected neighbor enumeration with the
// corner-cutting rule, and parent-chasing path reconstruction. Factoring
// this once here avoids re-deriving the same DX/DY/step-cost table in every
// engine.
package engine
