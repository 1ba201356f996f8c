// Package heuristic provides the admissible, consistent distance estimates
// used by the astar engine: Zero, Manhattan, Euclidean, and Octile, plus a
// name-based factory with an "auto" resolution rule.
//
// Zero, Euclidean and Octile are admissible and consistent under the grid
// step-cost model (orthogonal=1, diagonal=sqrt(2)); Manhattan is admissible
// and consistent only when diagonal movement is disallowed, since it counts
// a diagonal step as 2. Octile is tight for 8-neighbor grids, Manhattan for
// 4-neighbor grids.
package heuristic
