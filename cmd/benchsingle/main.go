// Command benchsingle runs one pathfinding algorithm over every scenario in
// a .scen file against a single MovingAI .map file, printing a per-case
// line for the first few scenarios and a summary line at the end.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wasabi9812/pathlab/astar"
	"github.com/wasabi9812/pathlab/blocksssp"
	"github.com/wasabi9812/pathlab/dijkstra"
	"github.com/wasabi9812/pathlab/engine"
	"github.com/wasabi9812/pathlab/gridmap"
	"github.com/wasabi9812/pathlab/heuristic"
	"github.com/wasabi9812/pathlab/internal/config"
	"github.com/wasabi9812/pathlab/internal/report"
	"github.com/wasabi9812/pathlab/pqueue"
	"github.com/wasabi9812/pathlab/scenario"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: benchsingle <map_file> <scen_file> [--astar] [--astar-po] [--dmm]")
		fmt.Fprintln(os.Stderr, "       [--heuristic H] [--no-diag] [--dmm-block N]")
		fmt.Fprintln(os.Stderr, "       [--print N] [--limit N] [--config file.yaml]")
		fmt.Fprintln(os.Stderr, "  H: auto|manhattan|octile|euclidean|zero (default: auto)")
		return 1
	}
	mapPath, scenPath, rest := args[0], args[1], args[2:]

	defaults := config.Default()
	if path := scanConfigPath(rest); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			log.Error().Err(err).Str("config", path).Msg("failed to load config")
			return 1
		}
		defaults = cfg
	}

	fs := flag.NewFlagSet("benchsingle", flag.ContinueOnError)
	useAstar := fs.Bool("astar", defaults.Algo == "astar", "use A* instead of Dijkstra")
	useAstarPO := fs.Bool("astar-po", defaults.Algo == "astar-po", "use A* with the POQueue backing")
	useDMM := fs.Bool("dmm", defaults.Algo == "dmm", "use the block-partitioned SSSP engine")
	noDiag := fs.Bool("no-diag", !defaults.AllowDiagonal, "disable diagonal movement")
	hname := fs.String("heuristic", defaults.Heuristic, "heuristic for A*: auto|manhattan|octile|euclidean|zero")
	printFirst := fs.Int("print", defaults.PrintFirst, "number of leading cases to print individually")
	limitCases := fs.Int("limit", defaults.LimitCases, "cap the number of scenarios run (0 = all)")
	dmmBlock := fs.Int("dmm-block", defaults.DMMBlockSize, "block size for the --dmm engine")
	fs.String("config", "", "optional YAML file of defaults for the flags above")
	if err := fs.Parse(rest); err != nil {
		return 1
	}
	allowDiag := !*noDiag

	m, err := gridmap.Load(mapPath)
	if err != nil {
		log.Error().Err(err).Str("map", mapPath).Msg("failed to load map")
		return 1
	}
	fmt.Printf("Map: %dx%d\n", m.Width(), m.Height())

	scen, err := scenario.Load(scenPath)
	if err != nil {
		log.Error().Err(err).Str("scen", scenPath).Msg("failed to load scenario file")
		return 1
	}
	fmt.Printf("Scenarios: %d\n", len(scen))

	h := heuristic.New(*hname, allowDiag)

	nTotal := len(scen)
	nRun := nTotal
	if *limitCases > 0 && *limitCases < nTotal {
		nRun = *limitCases
	}

	var acc report.Accumulator
	for i := 0; i < nRun; i++ {
		c := scen[i]
		var r engine.PathResult
		switch {
		case *useDMM:
			r = blocksssp.Solve(m, c.Start.X, c.Start.Y, c.Goal.X, c.Goal.Y,
				blocksssp.WithAllowDiagonal(allowDiag),
				blocksssp.WithParams(blocksssp.Params{BlockSize: *dmmBlock, Bound: math.Inf(1)}))
		case *useAstarPO:
			r = astar.Solve(m, c.Start.X, c.Start.Y, c.Goal.X, c.Goal.Y,
				astar.WithAllowDiagonal(allowDiag), astar.WithHeuristic(h),
				astar.WithQueue(func() pqueue.Queue { return pqueue.NewDefaultPOQueue() }))
		case *useAstar:
			r = astar.Solve(m, c.Start.X, c.Start.Y, c.Goal.X, c.Goal.Y,
				astar.WithAllowDiagonal(allowDiag), astar.WithHeuristic(h))
		default:
			r = dijkstra.Solve(m, c.Start.X, c.Start.Y, c.Goal.X, c.Goal.Y,
				dijkstra.WithAllowDiagonal(allowDiag))
		}

		acc.Add(r)
		if i < *printFirst {
			fmt.Println(report.FormatCase(i, r))
		}
	}

	algo := algoName(*useDMM, *useAstar, *useAstarPO)
	heurName := "n/a"
	if *useAstar || *useAstarPO {
		heurName = h.Name
	}
	summary := report.Summary{Algo: algo, Heuristic: heurName, AllowDiagonal: allowDiag}
	if *useDMM {
		summary.BlockSize = *dmmBlock
	}
	fmt.Println()
	fmt.Println(acc.Format(summary))
	return 0
}

func algoName(useDMM, useAstar, useAstarPO bool) string {
	switch {
	case useDMM:
		return "dmm"
	case useAstarPO:
		return "astar-po"
	case useAstar:
		return "astar"
	default:
		return "dijkstra"
	}
}

func scanConfigPath(args []string) string {
	for i, a := range args {
		switch {
		case a == "--config" || a == "-config":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		case strings.HasPrefix(a, "-config="):
			return strings.TrimPrefix(a, "-config=")
		}
	}
	return ""
}
