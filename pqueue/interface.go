package pqueue

// Queue is the capability set shared by every priority-queue backing in
// this package: push, pop, empty/size, and push/pop counters. Implementors
// may admit duplicate pushes for the same key; consumers are expected to
// filter stale pops via their own closed-set.
type Queue interface {
	// Push inserts id with the given priority. Duplicate ids are permitted.
	Push(id int, priority float64)
	// Pop removes and returns a key of minimum priority (within whatever
	// ordering guarantee the concrete backing documents) and true, or
	// (0, false) if the queue is empty.
	Pop() (int, bool)
	// Empty reports whether the queue currently holds no entries.
	Empty() bool
	// Size returns the number of entries currently held.
	Size() int
	// PushCount returns the number of Push calls since construction or the
	// last ResetStats.
	PushCount() uint64
	// PopCount returns the number of successful Pop calls since
	// construction or the last ResetStats.
	PopCount() uint64
	// ResetStats zeroes PushCount/PopCount without affecting queue contents.
	ResetStats()
}
