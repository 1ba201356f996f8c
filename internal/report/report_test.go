package report_test

import (
	"strings"
	"testing"

	"github.com/wasabi9812/pathlab/engine"
	"github.com/wasabi9812/pathlab/internal/report"
)

func TestFormatCase_Found(t *testing.T) {
	r := engine.PathResult{
		Found: true,
		Cost:  3.5,
		Stats: engine.SearchStats{Expanded: 10, Pushes: 12, Pops: 11, Millis: 0.25},
	}
	line := report.FormatCase(0, r)
	if !strings.Contains(line, "Case[0] FOUND") {
		t.Fatalf("line = %q, want prefix Case[0] FOUND", line)
	}
	if !strings.Contains(line, "cost=3.500") {
		t.Fatalf("line = %q, want cost=3.500", line)
	}
}

func TestFormatCase_Fail(t *testing.T) {
	line := report.FormatCase(2, engine.PathResult{Found: false})
	if !strings.Contains(line, "Case[2] FAIL") {
		t.Fatalf("line = %q, want Case[2] FAIL", line)
	}
}

func TestAccumulator_Format(t *testing.T) {
	var a report.Accumulator
	a.Add(engine.PathResult{Found: true, Cost: 2.0, Stats: engine.SearchStats{Expanded: 4, Pushes: 5, Pops: 4, Millis: 1.0}})
	a.Add(engine.PathResult{Found: false, Stats: engine.SearchStats{Expanded: 2, Pushes: 2, Pops: 2, Millis: 0.5}})

	line := a.Format(report.Summary{Algo: "dijkstra", Heuristic: "n/a", AllowDiagonal: true})
	if !strings.Contains(line, "Summary (1/2 solved)") {
		t.Fatalf("line = %q, want solved count 1/2", line)
	}
	if !strings.Contains(line, "algo=dijkstra") || !strings.Contains(line, "diag=on") {
		t.Fatalf("line = %q missing algo/diag fields", line)
	}
	if !strings.Contains(line, "avg_cost=2.000") {
		t.Fatalf("line = %q, want avg_cost=2.000 (only the solved case counts)", line)
	}
}

func TestAccumulator_Format_BlockSize(t *testing.T) {
	var a report.Accumulator
	a.Add(engine.PathResult{Found: true, Cost: 1.0})
	line := a.Format(report.Summary{Algo: "dmm", Heuristic: "n/a", BlockSize: 512})
	if !strings.Contains(line, "block=512") {
		t.Fatalf("line = %q, want block=512", line)
	}
}

func TestAccumulator_Format_NoCasesRun(t *testing.T) {
	var a report.Accumulator
	line := a.Format(report.Summary{Algo: "dijkstra", Heuristic: "n/a"})
	if !strings.Contains(line, "Summary (0/0 solved)") {
		t.Fatalf("line = %q, want 0/0 solved", line)
	}
	if !strings.Contains(line, "avg_cost=0.000") {
		t.Fatalf("line = %q, want avg_cost=0.000 when nothing solved", line)
	}
}
