// Package scenario loads MovingAI-style .scen benchmark scenario files:
// one (start, goal, known-optimal cost) tuple per data line, grouped under
// a map name, used to drive repeated single-source shortest-path queries
// against a gridmap.GridMap.
package scenario
