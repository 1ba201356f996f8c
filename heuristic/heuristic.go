package heuristic

import (
	"math"
	"strings"
)

// Func estimates the cost from (x1,y1) to (x2,y2). Results are always >= 0.
type Func func(x1, y1, x2, y2 int) float64

// Heuristic pairs an estimator function with a human-readable name tag,
// mirroring the original library's (fn, name) pair.
type Heuristic struct {
	H    Func
	Name string
}

// ZeroFunc always returns 0; using it degenerates A* into Dijkstra.
func ZeroFunc(x1, y1, x2, y2 int) float64 { return 0 }

// ManhattanFunc returns |dx| + |dy|. Admissible and consistent for
// 4-neighbor (orthogonal-only) grids.
func ManhattanFunc(x1, y1, x2, y2 int) float64 {
	return float64(absInt(x1-x2) + absInt(y1-y2))
}

// EuclideanFunc returns sqrt(dx^2 + dy^2). Admissible and consistent for
// grids where diagonal movement is allowed.
func EuclideanFunc(x1, y1, x2, y2 int) float64 {
	dx, dy := float64(x1-x2), float64(y1-y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// OctileFunc returns (dx+dy) + (sqrt(2)-2)*min(dx,dy): the exact shortest
// distance on an unobstructed 8-neighbor grid with unit/sqrt(2) step costs.
func OctileFunc(x1, y1, x2, y2 int) float64 {
	dx, dy := absInt(x1-x2), absInt(y1-y2)
	m := dx
	if dy < m {
		m = dy
	}
	const sqrt2 = math.Sqrt2
	return float64(dx+dy) + (sqrt2-2.0)*float64(m)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Zero is the always-0 heuristic.
var Zero = Heuristic{H: ZeroFunc, Name: "zero"}

// Manhattan is the L1 heuristic.
var Manhattan = Heuristic{H: ManhattanFunc, Name: "manhattan"}

// Euclidean is the L2 heuristic.
var Euclidean = Heuristic{H: EuclideanFunc, Name: "euclidean"}

// Octile is the exact 8-neighbor-grid heuristic.
var Octile = Heuristic{H: OctileFunc, Name: "octile"}

// New resolves a case-insensitive heuristic name to a Heuristic:
//
//	"zero"|"none"                -> Zero
//	"manhattan"|"l1"             -> Manhattan
//	"euclidean"|"euclid"|"l2"    -> Euclidean
//	"octile"|"diag"              -> Octile
//	"auto" or anything unknown   -> Octile if allowDiagonal, else Manhattan
func New(name string, allowDiagonal bool) Heuristic {
	switch strings.ToLower(name) {
	case "zero", "none":
		return Zero
	case "manhattan", "l1":
		return Manhattan
	case "euclid", "euclidean", "l2":
		return Euclidean
	case "octile", "diag":
		return Octile
	default:
		if allowDiagonal {
			return Octile
		}
		return Manhattan
	}
}
