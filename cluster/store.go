// SPDX-License-Identifier: MIT

// Dense similarity store.
//
// The store is an arena of entry records laid out row-major (offset = i*n + j),
// the same addressing as matrix.Dense. Queues hold offsets into the arena, so
// updating a cell is immediately visible to whichever queue holds it.
//
// Complexity: O(n²) time and memory; at/cell O(1).

package cluster

import (
	"fmt"
	"math"
)

// entry is the similarity of the row owner toward partner.
// pos is the entry's slot in its owner's heap, or -1 when not queued.
type entry struct {
	value   float64
	partner int32
	pos     int32
}

type store struct {
	n     int
	cells []entry // len == n*n, diagonal unused
}

// newStore fills every off-diagonal cell from fn. fn(i,i) is never called.
// A NaN value aborts with ErrInvalidSimilarity.
func newStore(n int, fn SimilarityFunc) (*store, error) {
	s := &store{n: n, cells: make([]entry, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		row := s.cells[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			if i == j {
				row[j] = entry{partner: int32(j), pos: -1}
				continue
			}
			v := fn(i, j)
			if math.IsNaN(v) {
				return nil, fmt.Errorf("%w: sim(%d,%d)", ErrInvalidSimilarity, i, j)
			}
			row[j] = entry{value: v, partner: int32(j), pos: -1}
		}
	}

	return s, nil
}

// cell returns the arena offset of (i,j).
func (s *store) cell(i, j int) int32 { return int32(i*s.n + j) }

// at returns the entry at (i,j) for in-place mutation.
func (s *store) at(i, j int) *entry { return &s.cells[i*s.n+j] }
