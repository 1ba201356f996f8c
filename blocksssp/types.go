package blocksssp

import (
	"math"

	"github.com/wasabi9812/pathlab/pqueue"
)

// ds is the capability shared by pqueue.EfficientDataStructure and
// pqueue.AdaptiveDataStructure: block-local insert/pull, no global-minimum
// guarantee from Insert alone.
type ds interface {
	Insert(v int, d float64)
	Pull() (minRemaining float64, vertices []int)
	IsEmpty() bool
}

// Params controls the block-partitioned structure backing Solve.
//
// BlockSize — batch size sorted on each Pull; only meaningful for the
// default EfficientDataStructure backing. Defaults to 1024.
// Bound      — distance ceiling at or above which relaxations are dropped
// (neither recorded nor inserted), letting Solve double as a bounded BMSSP-style probe.
// Defaults to +Inf (unbounded, full SSSP).
type Params struct {
	BlockSize int
	Bound     float64
}

// DefaultParams mirrors the original block_size=1024, bound=+Inf defaults.
func DefaultParams() Params {
	return Params{BlockSize: 1024, Bound: math.Inf(1)}
}

// Options configures a Solve call.
type Options struct {
	AllowDiagonal bool
	Params        Params
	NewDS         func(Params) ds
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithAllowDiagonal sets whether diagonal movement is permitted.
func WithAllowDiagonal(allow bool) Option {
	return func(o *Options) { o.AllowDiagonal = allow }
}

// WithParams overrides the block size / bound pair.
func WithParams(p Params) Option {
	return func(o *Options) { o.Params = p }
}

// WithAdaptiveQueue swaps the default EfficientDataStructure backing for
// pqueue.AdaptiveDataStructure, a capped min-heap that guarantees every
// pulled batch is globally minimal (at the cost of heap bookkeeping
// EfficientDataStructure avoids). capacity bounds entries per Pull.
func WithAdaptiveQueue(capacity int) Option {
	return func(o *Options) {
		o.NewDS = func(p Params) ds {
			return pqueue.NewAdaptiveDataStructure(capacity, p.Bound)
		}
	}
}

// DefaultOptions returns Options with 8-neighbor movement and an
// EfficientDataStructure backing sized from DefaultParams.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: true,
		Params:        DefaultParams(),
		NewDS: func(p Params) ds {
			return pqueue.NewEfficientDataStructure(p.BlockSize, p.Bound)
		},
	}
}
