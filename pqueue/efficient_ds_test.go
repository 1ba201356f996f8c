package pqueue_test

import (
	"math"
	"testing"

	"github.com/wasabi9812/pathlab/pqueue"
)

func TestEfficientDataStructure_PullSortsOneBlock(t *testing.T) {
	ds := pqueue.NewEfficientDataStructure(3, math.Inf(1))
	ds.Insert(1, 5.0)
	ds.Insert(2, 1.0)
	ds.Insert(3, 3.0)
	// Block is full (size 3); next insert opens a new block.
	ds.Insert(4, 0.5)

	min, verts := ds.Pull()
	if len(verts) != 1 {
		t.Fatalf("first pull (LIFO top, just-opened block) should have 1 item, got %v", verts)
	}
	if verts[0] != 4 {
		t.Fatalf("first pull vertex = %d, want 4 (most recent block, LIFO)", verts[0])
	}
	if min != 1.0 {
		t.Fatalf("min_remaining = %v, want 1.0 (best of remaining block)", min)
	}

	min, verts = ds.Pull()
	want := []int{2, 3, 1} // sorted ascending by distance: 1.0, 3.0, 5.0
	if len(verts) != 3 {
		t.Fatalf("second pull should drain the full block, got %v", verts)
	}
	for i, v := range want {
		if verts[i] != v {
			t.Fatalf("second pull order = %v, want %v", verts, want)
		}
	}
	if !math.IsInf(min, 1) {
		t.Fatalf("min_remaining after draining the last block = %v, want +Inf (the bound)", min)
	}
	if !ds.IsEmpty() {
		t.Fatalf("structure should be empty after draining all blocks")
	}
}

func TestEfficientDataStructure_BatchPrependDrainsFIFOFirst(t *testing.T) {
	ds := pqueue.NewEfficientDataStructure(10, math.Inf(1))
	ds.Insert(99, 1.0) // goes to sorted_blocks
	ds.BatchPrepend([]pqueue.Item{{V: 1, D: 3.0}, {V: 2, D: 2.0}})

	_, verts := ds.Pull()
	if len(verts) != 2 {
		t.Fatalf("first pull should drain the batch block (FIFO priority), got %v", verts)
	}
	if verts[0] != 2 || verts[1] != 1 {
		t.Fatalf("batch block should be sorted ascending: got %v, want [2 1]", verts)
	}

	_, verts = ds.Pull()
	if len(verts) != 1 || verts[0] != 99 {
		t.Fatalf("second pull should drain the sorted_blocks item, got %v", verts)
	}
}

func TestEfficientDataStructure_BoundDropsItems(t *testing.T) {
	ds := pqueue.NewEfficientDataStructure(10, 5.0)
	ds.Insert(1, 4.9)
	ds.Insert(2, 5.0)              // dropped: d >= bound
	ds.Insert(3, math.Inf(1))      // dropped: non-finite
	ds.Insert(4, math.NaN())       // dropped: non-finite

	_, verts := ds.Pull()
	if len(verts) != 1 || verts[0] != 1 {
		t.Fatalf("only the sub-bound finite item should survive, got %v", verts)
	}
}

func TestEfficientDataStructure_PullOnEmpty(t *testing.T) {
	ds := pqueue.NewEfficientDataStructure(10, 100.0)
	min, verts := ds.Pull()
	if verts != nil {
		t.Fatalf("pull on empty structure should return nil vertices, got %v", verts)
	}
	if min != 100.0 {
		t.Fatalf("pull on empty structure should return bound, got %v", min)
	}
}
