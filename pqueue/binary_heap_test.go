package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasabi9812/pathlab/pqueue"
)

func TestBinaryHeap_PopOrder(t *testing.T) {
	h := pqueue.NewBinaryHeap()
	h.Push(3, 3.0)
	h.Push(1, 1.0)
	h.Push(2, 2.0)

	var got []int
	for !h.Empty() {
		id, ok := h.Pop()
		require.True(t, ok, "Pop returned false while non-empty")
		got = append(got, id)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestBinaryHeap_StaleDuplicates(t *testing.T) {
	h := pqueue.NewBinaryHeap()
	h.Push(1, 5.0)
	h.Push(1, 1.0) // improved priority, duplicate key
	first, ok := h.Pop()
	require.True(t, ok)
	require.Equal(t, 1, first, "first pop should be the lower-priority duplicate")

	second, ok := h.Pop()
	require.True(t, ok, "second pop should surface the stale duplicate of 1")
	require.Equal(t, 1, second)
	require.True(t, h.Empty(), "heap should be empty after draining both duplicates")
}

func TestBinaryHeap_EmptyPop(t *testing.T) {
	h := pqueue.NewBinaryHeap()
	_, ok := h.Pop()
	require.False(t, ok, "Pop on empty heap should return ok=false")
}

func TestBinaryHeap_Counters(t *testing.T) {
	h := pqueue.NewBinaryHeap()
	h.Push(1, 1.0)
	h.Push(2, 2.0)
	h.Pop()
	require.EqualValues(t, 2, h.PushCount())
	require.EqualValues(t, 1, h.PopCount())

	h.ResetStats()
	require.Zero(t, h.PushCount())
	require.Zero(t, h.PopCount())
	require.Equal(t, 1, h.Size(), "ResetStats must not change queue contents")
}
