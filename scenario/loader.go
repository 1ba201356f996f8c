package scenario

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// Load reads a MovingAI-style .scen file and returns its scenarios.
//
// Lines starting with 'v' or 't' are headers and are skipped. Each data
// line is whitespace-separated fields:
//
//	bucket map_name map_w map_h sx sy gx gy optimal_length
//
// Malformed data lines (fewer than nine fields or unparsable numbers) are
// skipped rather than aborting the whole load, and fields past the ninth
// are ignored, matching the original
// loader's permissive istringstream-extraction behavior.
func Load(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpenFile
	}
	defer f.Close()

	var out []Scenario
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == 'v' || line[0] == 't' {
			continue
		}
		s, ok := parseLine(line)
		if !ok {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func parseLine(line string) (Scenario, bool) {
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return Scenario{}, false
	}
	ints := make([]int, 6)
	var err error
	bucket, err := strconv.Atoi(fields[0])
	if err != nil {
		return Scenario{}, false
	}
	for i, f := range []string{fields[2], fields[3], fields[4], fields[5], fields[6], fields[7]} {
		ints[i], err = strconv.Atoi(f)
		if err != nil {
			return Scenario{}, false
		}
	}
	opt, err := strconv.ParseFloat(fields[8], 64)
	if err != nil {
		return Scenario{}, false
	}
	return Scenario{
		Bucket:        bucket,
		MapName:       fields[1],
		MapW:          ints[0],
		MapH:          ints[1],
		Start:         Coord{X: ints[2], Y: ints[3]},
		Goal:          Coord{X: ints[4], Y: ints[5]},
		OptimalLength: opt,
	}, true
}
