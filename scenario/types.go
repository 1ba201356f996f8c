package scenario

import "errors"

// ErrOpenFile indicates the scenario file could not be opened for reading.
var ErrOpenFile = errors.New("scenario: failed to open scenario file")

// Coord is a grid coordinate.
type Coord struct {
	X, Y int
}

// Scenario is a single benchmark case: a start/goal pair, the benchmark's
// known-optimal path length, and the map it was generated against.
type Scenario struct {
	Start, Goal    Coord
	OptimalLength  float64
	MapName        string
	Bucket         int
	MapW, MapH     int
}
