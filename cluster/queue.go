// SPDX-License-Identifier: MIT

// Per-cluster priority queues.
//
// Each active cluster owns a binary max-heap of arena offsets ordered by
// similarity descending. Equal similarities are ordered by partner ascending,
// which makes the within-queue tie-break deterministic. Every queued entry
// records its heap slot (entry.pos), so arbitrary removal is O(log n).

package cluster

import (
	"container/heap"
	"fmt"
)

// queue implements heap.Interface over offsets into a shared store.
type queue struct {
	st    *store
	items []int32
}

var _ heap.Interface = (*queue)(nil)

// newQueue builds a heap over cells in O(len(cells)). The slice is owned by the queue.
func newQueue(st *store, cells []int32) *queue {
	q := &queue{st: st, items: cells}
	for i, c := range q.items {
		st.cells[c].pos = int32(i)
	}
	heap.Init(q)

	return q
}

// Len returns the number of queued entries.
func (q *queue) Len() int { return len(q.items) }

// Less orders by value descending, then partner ascending.
func (q *queue) Less(i, j int) bool {
	a, b := &q.st.cells[q.items[i]], &q.st.cells[q.items[j]]
	if a.value != b.value {
		return a.value > b.value
	}

	return a.partner < b.partner
}

// Swap swaps two slots and keeps entry.pos in sync.
func (q *queue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.st.cells[q.items[i]].pos = int32(i)
	q.st.cells[q.items[j]].pos = int32(j)
}

// Push is called by heap.Push; x must be an int32 offset.
func (q *queue) Push(x any) {
	c := x.(int32)
	q.st.cells[c].pos = int32(len(q.items))
	q.items = append(q.items, c)
}

// Pop is called by heap.Pop and heap.Remove.
func (q *queue) Pop() any {
	n := len(q.items)
	c := q.items[n-1]
	q.items = q.items[:n-1]
	q.st.cells[c].pos = -1

	return c
}

// peek returns the most similar entry without removing it.
func (q *queue) peek() (*entry, error) {
	if len(q.items) == 0 {
		return nil, ErrEmptyQueue
	}

	return &q.st.cells[q.items[0]], nil
}

// remove deletes cell c. The entry must be queued here.
func (q *queue) remove(c int32) error {
	p := int(q.st.cells[c].pos)
	if p < 0 || p >= len(q.items) || q.items[p] != c {
		return fmt.Errorf("%w: cell %d", ErrMissingEntry, c)
	}
	heap.Remove(q, p)

	return nil
}

// insert adds cell c.
func (q *queue) insert(c int32) { heap.Push(q, c) }
