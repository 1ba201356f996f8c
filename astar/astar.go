package astar

import (
	"math"
	"time"

	"github.com/wasabi9812/pathlab/engine"
	"github.com/wasabi9812/pathlab/gridmap"
)

// Solve computes the optimal-cost path from (sx,sy) to (gx,gy) on m using
// A* keyed on f = g + h, i.e. Dijkstra reweighted by cfg.Heuristic. Duplicate
// pushes are admitted on every relaxation; stale pops are filtered by a
// closed-set.
//
// Returns PathResult{Found:false} (zero cost, empty path, zeroed stats) if
// either endpoint is out of bounds or blocked. If goal is unreachable, Found
// is false with zero cost and an empty path, and Stats reflect the work done.
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
	g := make([]float64, n)
	parent := make([]int, n)
	closed := make([]bool, n)
	for i := range g {
		g[i] = math.Inf(1)
		parent[i] = -1
	}

	sID, gID := m.ID(sx, sy), m.ID(gx, gy)
	g[sID] = 0
	q := cfg.NewQueue()
	q.Push(sID, cfg.Heuristic.H(sx, sy, gx, gy))

	var expanded uint64
	var nbuf []engine.Neighbor
	for !q.Empty() {
		u, ok := q.Pop()
		if !ok {
			break
		}
		if closed[u] {
			continue
		}
		if u == gID {
			break
		}
		closed[u] = true
		expanded++

		ux, uy := m.XY(u)
		nbuf = engine.AppendNeighbors(nbuf[:0], m, ux, uy, cfg.AllowDiagonal)
		for _, nb := range nbuf {
			if closed[nb.ID] {
				continue
			}
			ng := g[u] + nb.Cost
			if ng < g[nb.ID] {
				g[nb.ID] = ng
				parent[nb.ID] = u
				vx, vy := m.XY(nb.ID)
				f := ng + cfg.Heuristic.H(vx, vy, gx, gy)
				q.Push(nb.ID, f)
			}
		}
	}

	r.Stats.Millis = engine.Elapsed(t0)
	r.Stats.Expanded = expanded
	r.Stats.Pushes = q.PushCount()
	r.Stats.Pops = q.PopCount()

	if math.IsInf(g[gID], 1) {
		r.Found = false
		return r
	}
	r.Found = true
	r.Cost = g[gID]
	r.Path = engine.ReconstructPath(parent, gID)
	return r
}
