package blocksssp

import (
	"math"
	"time"

	"github.com/wasabi9812/pathlab/engine"
	"github.com/wasabi9812/pathlab/gridmap"
)

// Solve computes the optimal-cost path from (sx,sy) to (gx,gy) on m without
// a global priority queue: vertices are relaxed in whole blocks pulled from
// a pqueue.EfficientDataStructure (or, with WithAdaptiveQueue, a capped
// min-heap), each block locally sorted on Pull rather than kept globally
// ordered. A closed vertex is reopened whenever a later block offers it a
// shorter distance, and the search drains the structure (dropping any
// relaxation no shorter than the goal's current distance) instead of
// stopping at the goal's first pop, so the shortest path found is exact.
//
// Returns PathResult{Found:false} (zero cost, empty path, zeroed stats) if
// either endpoint is out of bounds or blocked. If goal is unreachable within
// cfg.Params.Bound, Found is false with zero cost and an empty path, and
// Stats reflect the work done.
func Solve(m *gridmap.GridMap, sx, sy, gx, gy int, opts ...Option) engine.PathResult {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var r engine.PathResult
	if !engine.ValidEndpoints(m, sx, sy, gx, gy) {
		return r
	}

	t0 := time.Now()
	n := m.Width() * m.Height()
	dist := make([]float64, n)
	parent := make([]int, n)
	closed := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}

	sID, gID := m.ID(sx, sy), m.ID(gx, gy)
	dist[sID] = 0
	store := cfg.NewDS(cfg.Params)
	store.Insert(sID, 0)

	var expanded uint64
	var nbuf []engine.Neighbor
	for !store.IsEmpty() {
		_, batch := store.Pull()
		if len(batch) == 0 {
			break
		}
		for _, u := range batch {
			if closed[u] {
				continue
			}
			closed[u] = true
			if u == gID {
				continue
			}
			expanded++

			ux, uy := m.XY(u)
			nbuf = engine.AppendNeighbors(nbuf[:0], m, ux, uy, cfg.AllowDiagonal)
			for _, nb := range nbuf {
				nd := dist[u] + nb.Cost
				if nd < dist[nb.ID] && nd < dist[gID] && nd < cfg.Params.Bound {
					dist[nb.ID] = nd
					parent[nb.ID] = u
					closed[nb.ID] = false
					store.Insert(nb.ID, nd)
				}
			}
		}
	}

	r.Stats.Millis = engine.Elapsed(t0)
	r.Stats.Expanded = expanded

	if math.IsInf(dist[gID], 1) {
		r.Found = false
		return r
	}
	r.Found = true
	r.Cost = dist[gID]
	r.Path = engine.ReconstructPath(parent, gID)
	return r
}
