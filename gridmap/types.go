package gridmap

import "errors"

// Sentinel errors for gridmap operations.
var (
	// ErrOpenFile indicates the map file could not be opened for reading.
	ErrOpenFile = errors.New("gridmap: failed to open map file")
	// ErrEmptyMap indicates the loaded map has zero width or zero height,
	// either because no "map" header line was found or all rows were empty.
	ErrEmptyMap = errors.New("gridmap: map has zero width or height")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
)

// GridMap is an immutable, read-only 2D passability oracle: width W,
// height H, and a pure O(1) query IsFree(x,y). Cells outside [0,W)×[0,H)
// are conceptually blocked. Node (x,y) has stable id y*W + x.
type GridMap struct {
	width, height int
	rows          []string // rows[y][x]; '.' is free, everything else blocked
}

// Width returns the grid width.
func (g *GridMap) Width() int { return g.width }

// Height returns the grid height.
func (g *GridMap) Height() int { return g.height }

// IsFree reports whether (x,y) is within bounds and marked free ('.').
// Out-of-range coordinates return false.
func (g *GridMap) IsFree(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.rows[y][x] == '.'
}

// ID returns the stable node identity y*W + x for a cell within bounds.
func (g *GridMap) ID(x, y int) int { return y*g.width + x }

// XY decodes a node id back into (x,y). Callers must ensure id came from
// this map's ID(x,y); it does no bounds validation.
func (g *GridMap) XY(id int) (x, y int) { return id % g.width, id / g.width }
