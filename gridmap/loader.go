package gridmap

import (
	"bufio"
	"os"
	"strings"
)

// Load reads a MovingAI-style map file and builds an immutable GridMap.
//
// Lines before the literal line "map" are header and ignored. Each
// subsequent non-empty line is one row of the grid, one character per cell;
// a trailing '\r' is stripped. width is the length of the first row,
// height is the number of rows. Returns ErrOpenFile if the file cannot be
// opened, ErrEmptyMap if no rows follow the "map" header (or the header is
// absent), and ErrNonRectangular if rows differ in length.
func Load(path string) (*GridMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenFile
	}
	defer f.Close()

	var rows []string
	inMapSection := false
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "map" {
			inMapSection = true
			continue
		}
		if !inMapSection {
			continue
		}
		if line != "" {
			rows = append(rows, line)
		}
	}

	height := len(rows)
	width := 0
	if height > 0 {
		width = len(rows[0])
	}
	if height == 0 || width == 0 {
		return nil, ErrEmptyMap
	}
	for _, row := range rows {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	return &GridMap{width: width, height: height, rows: rows}, nil
}
