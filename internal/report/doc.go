// Package report formats per-case and summary benchmark output lines for
// cmd/benchsingle, matching the field set and ordering of the original
// bench_single driver: found/cost/expanded/pushes/pops/time_ms per case, and
// solved-count/algo/heuristic/diag/avg_* in the summary.
package report
