package dijkstra

import "github.com/wasabi9812/pathlab/pqueue"

// Options configures a Solve call.
//
// AllowDiagonal — if true (default), 8-neighbor octile movement; otherwise
// 4-neighbor orthogonal movement.
// NewQueue       — factory for the backing pqueue.Queue; defaults to
// pqueue.NewBinaryHeap. Pass pqueue.NewDefaultPOQueue to exercise the
// windowed bucket queue (§4.5/§8 property 5: queue equivalence).
type Options struct {
	AllowDiagonal bool
	NewQueue      func() pqueue.Queue
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithAllowDiagonal sets whether diagonal movement is permitted.
func WithAllowDiagonal(allow bool) Option {
	return func(o *Options) { o.AllowDiagonal = allow }
}

// WithQueue overrides the backing queue implementation.
func WithQueue(newQueue func() pqueue.Queue) Option {
	return func(o *Options) { o.NewQueue = newQueue }
}

// DefaultOptions returns Options with 8-neighbor movement and a BinaryHeap
// backing.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: true,
		NewQueue:      func() pqueue.Queue { return pqueue.NewBinaryHeap() },
	}
}
