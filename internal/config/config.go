package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bench holds the defaults for a cmd/benchsingle run. Values here are
// overridden by any flag the user passes explicitly on the command line.
type Bench struct {
	Algo          string `yaml:"algo"`           // dijkstra|astar|astar-po|dmm
	Heuristic     string `yaml:"heuristic"`      // auto|manhattan|octile|euclidean|zero
	AllowDiagonal bool   `yaml:"allow_diagonal"`
	PrintFirst    int    `yaml:"print_first"`
	LimitCases    int    `yaml:"limit_cases"`
	DMMBlockSize  int    `yaml:"dmm_block_size"`
}

// Default returns the same built-in defaults cmd/benchsingle uses when no
// --config file is given.
func Default() Bench {
	return Bench{
		Algo:          "dijkstra",
		Heuristic:     "auto",
		AllowDiagonal: true,
		PrintFirst:    5,
		LimitCases:    0,
		DMMBlockSize:  1024,
	}
}

// Load reads a YAML file into a Bench, starting from Default() so any field
// the file omits keeps its default value. A missing file is not an error:
// Default() is returned unchanged.
func Load(path string) (Bench, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
