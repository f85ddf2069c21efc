package cluster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// rowStore builds a 4-item store with sim(i,j) = -|i-j|.
func rowStore(t *testing.T) *store {
	t.Helper()
	st, err := newStore(4, func(i, j int) float64 {
		d := i - j
		if d < 0 {
			d = -d
		}
		return -float64(d)
	})
	require.NoError(t, err)

	return st
}

func TestQueue_PeekRemoveInsert(t *testing.T) {
	st := rowStore(t)
	q := newQueue(st, []int32{st.cell(2, 0), st.cell(2, 1), st.cell(2, 3)})

	// 1 and 3 tie at -1; the lower partner wins.
	top, err := q.peek()
	require.NoError(t, err)
	require.Equal(t, int32(1), top.partner)

	require.NoError(t, q.remove(st.cell(2, 1)))
	top, err = q.peek()
	require.NoError(t, err)
	require.Equal(t, int32(3), top.partner)

	// Mutating the cell through the store and requeueing reorders the heap.
	st.at(2, 1).value = 10
	q.insert(st.cell(2, 1))
	top, err = q.peek()
	require.NoError(t, err)
	require.Equal(t, int32(1), top.partner)
	require.Equal(t, 10.0, top.value)
}

func TestQueue_RemoveMissing(t *testing.T) {
	st := rowStore(t)
	q := newQueue(st, []int32{st.cell(0, 1), st.cell(0, 2)})

	err := q.remove(st.cell(0, 3))
	require.ErrorIs(t, err, ErrMissingEntry)

	require.NoError(t, q.remove(st.cell(0, 2)))
	require.ErrorIs(t, q.remove(st.cell(0, 2)), ErrMissingEntry)
}

func TestQueue_PeekEmpty(t *testing.T) {
	st := rowStore(t)
	q := newQueue(st, nil)
	_, err := q.peek()
	require.ErrorIs(t, err, ErrEmptyQueue)
}

func TestQueue_PositionsTrackHeap(t *testing.T) {
	st := rowStore(t)
	q := newQueue(st, []int32{st.cell(0, 1), st.cell(0, 2), st.cell(0, 3)})
	for i, c := range q.items {
		require.Equal(t, int32(i), st.cells[c].pos)
	}
	require.NoError(t, q.remove(st.cell(0, 1)))
	require.Equal(t, int32(-1), st.cells[st.cell(0, 1)].pos)
}

func TestEngine_DesyncIsFatal(t *testing.T) {
	st := rowStore(t)
	e := newEngine(st, DefaultOptions())

	// Drop (3,0) behind the engine's back; folding 1 into 0 must notice.
	require.NoError(t, e.queues[3].remove(st.cell(3, 0)))
	err := e.merge(0, 1)
	require.ErrorIs(t, err, ErrMissingEntry)
}

func TestEngine_EmptyQueueIsFatal(t *testing.T) {
	st := rowStore(t)
	e := newEngine(st, DefaultOptions())
	e.queues[2] = newQueue(st, nil)

	_, err := e.bestPair()
	require.ErrorIs(t, err, ErrEmptyQueue)
}

func TestEngine_NoActivePair(t *testing.T) {
	st := rowStore(t)
	e := newEngine(st, DefaultOptions())
	for i := 1; i < 4; i++ {
		e.active.Clear(uint(i))
	}

	_, err := e.bestPair()
	require.ErrorIs(t, err, ErrNoActiveClusters)
}

func TestEngine_MergeKeepsQueueInvariant(t *testing.T) {
	st := rowStore(t)
	e := newEngine(st, DefaultOptions())
	require.NoError(t, e.merge(1, 2))

	// Every active queue holds exactly one entry per other active cluster.
	require.Nil(t, e.queues[2])
	for _, i := range []int{0, 1, 3} {
		require.Equal(t, 2, e.queues[i].Len(), "cluster %d", i)
		for _, c := range e.queues[i].items {
			require.NotEqual(t, int32(2), st.cells[c].partner)
			require.NotEqual(t, int32(i), st.cells[c].partner)
		}
	}
	// single linkage: sim(0,{1,2}) = max(-1,-2) = -1, both directions.
	require.Equal(t, -1.0, st.at(0, 1).value)
	require.Equal(t, -1.0, st.at(1, 0).value)
	require.Equal(t, 2, e.size[1])
}
