package astar

import (
	"github.com/wasabi9812/pathlab/heuristic"
	"github.com/wasabi9812/pathlab/pqueue"
)

// Options configures a Solve call.
//
// AllowDiagonal — if true (default), 8-neighbor octile movement; otherwise
// 4-neighbor orthogonal movement.
// Heuristic      — the admissible estimator used to key the open set;
// defaults to heuristic.Octile whatever AllowDiagonal is set to (Octile never
// exceeds Manhattan, so it stays admissible on 4-neighbor grids). Pass
// WithHeuristic to choose another.
// NewQueue       — factory for the backing pqueue.Queue; defaults to
// pqueue.NewBinaryHeap.
type Options struct {
	AllowDiagonal bool
	Heuristic     heuristic.Heuristic
	NewQueue      func() pqueue.Queue
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithAllowDiagonal sets whether diagonal movement is permitted.
func WithAllowDiagonal(allow bool) Option {
	return func(o *Options) { o.AllowDiagonal = allow }
}

// WithHeuristic overrides the heuristic estimator.
func WithHeuristic(h heuristic.Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithQueue overrides the backing queue implementation.
func WithQueue(newQueue func() pqueue.Queue) Option {
	return func(o *Options) { o.NewQueue = newQueue }
}

// DefaultOptions returns Options with 8-neighbor movement, the Octile
// heuristic, and a BinaryHeap backing.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: true,
		Heuristic:     heuristic.Octile,
		NewQueue:      func() pqueue.Queue { return pqueue.NewBinaryHeap() },
	}
}
