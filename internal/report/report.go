package report

import (
	"fmt"

	"github.com/wasabi9812/pathlab/engine"
)

// Accumulator tallies per-case results into the fields the summary line
// reports: solved count and running sums of cost/millis/expanded/pushes/pops.
type Accumulator struct {
	Total       int
	Solved      int
	SumCost     float64
	SumMillis   float64
	SumExpanded uint64
	SumPushes   uint64
	SumPops     uint64
}

// Add folds one case's result into the accumulator.
func (a *Accumulator) Add(r engine.PathResult) {
	a.Total++
	if r.Found {
		a.Solved++
		a.SumCost += r.Cost
	}
	a.SumMillis += r.Stats.Millis
	a.SumExpanded += r.Stats.Expanded
	a.SumPushes += r.Stats.Pushes
	a.SumPops += r.Stats.Pops
}

// FormatCase renders one "Case[i] FOUND|FAIL cost=... expanded=... pushes=...
// pops=... time_ms=..." line.
func FormatCase(i int, r engine.PathResult) string {
	status := "FAIL"
	if r.Found {
		status = "FOUND"
	}
	return fmt.Sprintf("Case[%d] %s cost=%.3f expanded=%d pushes=%d pops=%d time_ms=%.3f",
		i, status, r.Cost, r.Stats.Expanded, r.Stats.Pushes, r.Stats.Pops, r.Stats.Millis)
}

// Summary holds the descriptive fields printed alongside the accumulated
// averages: which algorithm ran, which heuristic (if any), whether diagonal
// movement was enabled, and the block size for the blocksssp algorithm.
type Summary struct {
	Algo          string
	Heuristic     string
	AllowDiagonal bool
	BlockSize     int // 0 means "not applicable", omitted from the line
}

// Format renders the final "Summary (solved/total solved) algo=... ..." line.
func (a Accumulator) Format(s Summary) string {
	diag := "off"
	if s.AllowDiagonal {
		diag = "on"
	}
	avgCost := 0.0
	if a.Solved > 0 {
		avgCost = a.SumCost / float64(a.Solved)
	}
	avgExpanded, avgPushes, avgPops, avgMillis := 0.0, 0.0, 0.0, 0.0
	if a.Total > 0 {
		avgExpanded = float64(a.SumExpanded) / float64(a.Total)
		avgPushes = float64(a.SumPushes) / float64(a.Total)
		avgPops = float64(a.SumPops) / float64(a.Total)
		avgMillis = a.SumMillis / float64(a.Total)
	}

	block := ""
	if s.BlockSize > 0 {
		block = fmt.Sprintf(" block=%d", s.BlockSize)
	}

	return fmt.Sprintf(
		"Summary (%d/%d solved) algo=%s heuristic=%s diag=%s%s avg_cost=%.3f avg_expanded=%.3f avg_pushes=%.3f avg_pops=%.3f avg_time_ms=%.3f",
		a.Solved, a.Total, s.Algo, s.Heuristic, diag, block, avgCost, avgExpanded, avgPushes, avgPops, avgMillis,
	)
}
