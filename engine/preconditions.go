package engine

import "github.com/wasabi9812/pathlab/gridmap"

// ValidEndpoints reports whether both (sx,sy) and (gx,gy) are in-bounds,
// free cells of m. Engines return a zeroed PathResult{Found:false} when
// this is false, per the BadInput error taxonomy.
func ValidEndpoints(m *gridmap.GridMap, sx, sy, gx, gy int) bool {
	return m.IsFree(sx, sy) && m.IsFree(gx, gy)
}
