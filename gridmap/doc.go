// Package gridmap provides GridMap, an immutable binary-occupancy grid in
// the MovingAI benchmark tradition, plus a loader for MovingAI map files.
//
// A GridMap answers IsFree(x,y) in O(1). Only the character '.' denotes a
// free cell; '@', 'T', and every other character (including off-grid
// coordinates) are blocked. The map is read-only once loaded and safe for
// concurrent readers.
package gridmap
