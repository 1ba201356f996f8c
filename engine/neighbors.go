package engine

import (
	"math"

	"github.com/wasabi9812/pathlab/gridmap"
)

// dx/dy/step tables for the 8-neighbor case; the first 4 entries are the
// orthogonal neighbors and are reused alone when diagonals are disallowed.
var (
	dx   = [8]int{1, -1, 0, 0, 1, 1, -1, -1}
	dy   = [8]int{0, 0, 1, -1, 1, -1, 1, -1}
	step = [8]float64{1, 1, 1, 1, math.Sqrt2, math.Sqrt2, math.Sqrt2, math.Sqrt2}
)

// Neighbor is one admissible step out of a cell: the destination node id
// and the cost of moving there.
type Neighbor struct {
	ID   int
	Cost float64
}

// AppendNeighbors appends to dst every admissible neighbor of (ux,uy) in
// map: always the 4 orthogonal cells, plus the 4 diagonals when
// allowDiagonal is true. Off-grid and blocked cells are skipped. A diagonal
// step is skipped if either orthogonal mediator is blocked (no
// corner-cutting). Returns the extended slice.
func AppendNeighbors(dst []Neighbor, m *gridmap.GridMap, ux, uy int, allowDiagonal bool) []Neighbor {
	n := 4
	if allowDiagonal {
		n = 8
	}
	for k := 0; k < n; k++ {
		vx, vy := ux+dx[k], uy+dy[k]
		if !m.IsFree(vx, vy) {
			continue
		}
		if k >= 4 {
			// Corner-cutting guard: both orthogonal mediators must be free.
			if !m.IsFree(ux+dx[k], uy) || !m.IsFree(ux, uy+dy[k]) {
				continue
			}
		}
		dst = append(dst, Neighbor{ID: m.ID(vx, vy), Cost: step[k]})
	}
	return dst
}

// ReconstructPath walks parent[] from goalID back to a node with parent -1
// (the start) and returns the sequence from start to goal.
func ReconstructPath(parent []int, goalID int) []int {
	var rev []int
	for v := goalID; v != -1; v = parent[v] {
		rev = append(rev, v)
	}
	path := make([]int, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
