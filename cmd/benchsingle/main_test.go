package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestRun_Dijkstra(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "m.map", "map\n...\n...\n...\n")
	scenPath := writeFile(t, dir, "s.scen", "version 1\n0\tm.map\t3\t3\t0\t0\t2\t2\t2.828427\n")

	code := run([]string{mapPath, scenPath})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRun_AstarConfig(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "m.map", "map\n...\n...\n...\n")
	scenPath := writeFile(t, dir, "s.scen", "version 1\n0\tm.map\t3\t3\t0\t0\t2\t2\t2.828427\n")
	cfgPath := writeFile(t, dir, "bench.yaml", "algo: astar\nheuristic: octile\n")

	code := run([]string{mapPath, scenPath, "--config", cfgPath})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRun_AstarPO(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "m.map", "map\n...\n...\n...\n")
	scenPath := writeFile(t, dir, "s.scen", "version 1\n0\tm.map\t3\t3\t0\t0\t2\t2\t2.828427\n")

	code := run([]string{mapPath, scenPath, "--astar-po", "--print", "1"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRun_DMM(t *testing.T) {
	dir := t.TempDir()
	mapPath := writeFile(t, dir, "m.map", "map\n.....\n.....\n.....\n.....\n.....\n")
	scenPath := writeFile(t, dir, "s.scen", "version 1\n0\tm.map\t5\t5\t0\t0\t4\t4\t5.656854\n")

	code := run([]string{mapPath, scenPath, "--dmm", "--dmm-block", "4"})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
}

func TestRun_MissingArgs(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Fatalf("run(nil) = %d, want 1", code)
	}
}

func TestRun_BadMapPath(t *testing.T) {
	dir := t.TempDir()
	scenPath := writeFile(t, dir, "s.scen", "version 1\n")
	if code := run([]string{filepath.Join(dir, "nope.map"), scenPath}); code != 1 {
		t.Fatalf("run() = %d, want 1 for a missing map file", code)
	}
}
