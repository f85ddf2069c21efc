// SPDX-License-Identifier: MIT

// Package cluster implements greedy agglomerative hierarchical clustering.
//
// Compute merges the two most similar active clusters until N-1 merges were
// made or the stop predicate fires, and returns the merges in order.
//
// Complexity:
//
//   - Time:  O(N² log N)
//   - Store: N·(N-1) calls to the similarity function, O(N²).
//   - Queues: one heap per item, O(N² log N) to build.
//   - Each iteration: O(active) best-pair scan + O(active · log N) update.
//   - Space: O(N²)
//
// Notes on implementation choices:
//
//   - The best pair is found by a linear scan over active clusters in index
//     order; a strictly greater similarity replaces the incumbent, so ties go
//     to the lowest cluster index.
//   - A retired cluster drops its queue; the active set is a bitset.
//   - The survivor's queue is rebuilt from its refreshed row after every merge.
package cluster

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// minShardSize is the smallest number of clusters handed to one goroutine.
const minShardSize = 64

// Compute clusters n items whose pairwise similarity is given by fn.
//
// Returns the merges in the order they were made. The slice has n-1 entries
// unless the stop predicate fired. n == 1 yields an empty slice.
//
// Preconditions and validation (in order):
//  1. 1 <= n <= MaxItems (ErrInvalidItemCount).
//  2. fn != nil (ErrNilSimilarity).
//  3. linkage resolves (ErrUnsupportedLinkage, ErrNilLinkage).
//  4. fn never returns NaN (ErrInvalidSimilarity); the same error aborts the
//     run if the linkage combines two values into NaN.
//
// Invariant violations (ErrEmptyQueue, ErrMissingEntry, ErrNoActiveClusters)
// abort the run and return no merges. A cancelled context returns the merges
// made so far together with the wrapped context error.
func Compute(n int, fn SimilarityFunc, opts ...Option) ([]Merge, error) {
	if n < 1 || n > MaxItems {
		return nil, fmt.Errorf("%w: got %d (max %d)", ErrInvalidItemCount, n, MaxItems)
	}
	if fn == nil {
		return nil, ErrNilSimilarity
	}
	cfg, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []Merge{}, nil
	}

	st, err := newStore(n, fn)
	if err != nil {
		return nil, err
	}

	e := newEngine(st, cfg)

	return e.run()
}

// engine holds the mutable state of one Compute run.
type engine struct {
	n      int
	st     *store
	queues []*queue       // nil once a cluster is retired
	active *bitset.BitSet // set bit == active cluster
	size   []int          // items per cluster, indexed by surviving id
	cfg    Options
	log    zerolog.Logger
	ids    []int // scratch: active ids in ascending order
	merges []Merge
}

// candidate is the best pair found by a scan.
type candidate struct {
	k1, k2 int
	sim    float64
	ok     bool
}

// newEngine builds one queue per item over its row of the store.
func newEngine(st *store, cfg Options) *engine {
	n := st.n
	e := &engine{
		n:      n,
		st:     st,
		queues: make([]*queue, n),
		active: bitset.New(uint(n)),
		size:   make([]int, n),
		cfg:    cfg,
		log:    cfg.Logger.With().Str("linkage", cfg.Linkage.Name()).Int("items", n).Logger(),
		ids:    make([]int, 0, n),
		merges: make([]Merge, 0, n-1),
	}

	var i, j int
	for i = 0; i < n; i++ {
		cells := make([]int32, 0, n-1)
		for j = 0; j < n; j++ {
			if i != j {
				cells = append(cells, st.cell(i, j))
			}
		}
		e.queues[i] = newQueue(st, cells)
		e.active.Set(uint(i))
		e.size[i] = 1
	}

	return e
}

// run is the merge loop: scan, stop check, record, update.
func (e *engine) run() ([]Merge, error) {
	stopped := false
	for k := 0; k < e.n-1; k++ {
		if err := e.cfg.Ctx.Err(); err != nil {
			return e.merges, fmt.Errorf("cluster: interrupted after %d merges: %w", len(e.merges), err)
		}

		c, err := e.bestPair()
		if err != nil {
			return nil, err
		}

		if e.cfg.Stop(c.sim) {
			stopped = true
			e.log.Debug().Int("survivor", c.k1).Int("absorbed", c.k2).Float64("similarity", c.sim).Msg("stop predicate fired")
			break
		}

		m := Merge{
			Survivor:   c.k1,
			Absorbed:   c.k2,
			Similarity: c.sim,
			Size:       e.size[c.k1] + e.size[c.k2],
		}
		e.merges = append(e.merges, m)
		e.log.Debug().
			Int("step", k).
			Int("survivor", m.Survivor).
			Int("absorbed", m.Absorbed).
			Float64("similarity", m.Similarity).
			Int("size", m.Size).
			Msg("merge")

		if err = e.merge(c.k1, c.k2); err != nil {
			return nil, err
		}
	}

	e.log.Info().Int("merges", len(e.merges)).Bool("stopped", stopped).Msg("clustering finished")

	return e.merges, nil
}

// activeIDs refreshes e.ids with the active clusters in ascending order.
func (e *engine) activeIDs() []int {
	e.ids = e.ids[:0]
	for i, ok := e.active.NextSet(0); ok; i, ok = e.active.NextSet(i + 1) {
		e.ids = append(e.ids, int(i))
	}

	return e.ids
}

// bestPair returns the globally most similar active pair.
func (e *engine) bestPair() (candidate, error) {
	ids := e.activeIDs()
	if len(ids) < 2 {
		return candidate{}, ErrNoActiveClusters
	}

	shards := e.shardCount(len(ids))
	if shards < 2 {
		return e.scan(ids)
	}

	local := make([]candidate, shards)
	err := forShards(ids, shards, func(s int, part []int) error {
		c, err := e.scan(part)
		local[s] = c

		return err
	})
	if err != nil {
		return candidate{}, err
	}

	// Reduce in shard order with the same strict comparison as scan.
	var best candidate
	for _, c := range local {
		if !c.ok || (best.ok && c.sim <= best.sim) {
			continue
		}
		best = c
	}
	if !best.ok {
		return candidate{}, ErrNoActiveClusters
	}

	return best, nil
}

// scan peeks every queue in ids and keeps the first strictly greater top.
func (e *engine) scan(ids []int) (candidate, error) {
	var best candidate
	for _, i := range ids {
		top, err := e.queues[i].peek()
		if err != nil {
			return candidate{}, fmt.Errorf("cluster %d: %w", i, err)
		}
		if best.ok && top.value <= best.sim {
			continue
		}
		best = candidate{k1: i, k2: int(top.partner), sim: top.value, ok: true}
	}

	return best, nil
}

// merge folds k2 into k1 and retires k2.
func (e *engine) merge(k1, k2 int) error {
	e.active.Clear(uint(k2))
	e.queues[k2] = nil

	ids := e.activeIDs()
	others := make([]int, 0, len(ids)-1)
	for _, i := range ids {
		if i != k1 {
			others = append(others, i)
		}
	}

	var err error
	if shards := e.shardCount(len(others)); shards < 2 {
		err = e.update(k1, k2, others)
	} else {
		err = forShards(others, shards, func(_ int, part []int) error {
			return e.update(k1, k2, part)
		})
	}
	if err != nil {
		return err
	}

	// Rebuild the survivor's queue from its refreshed row.
	old := e.queues[k1]
	for _, c := range old.items {
		e.st.cells[c].pos = -1
	}
	cells := old.items[:0]
	for _, i := range others {
		cells = append(cells, e.st.cell(k1, i))
	}
	e.queues[k1] = newQueue(e.st, cells)

	e.size[k1] += e.size[k2]

	return nil
}

// update refreshes, for every i in part, the cells (i,k1) and (k1,i) and
// requeues (i,k1). Each i touches only its own queue and cells.
func (e *engine) update(k1, k2 int, part []int) error {
	st := e.st
	l := e.cfg.Linkage
	s1, s2 := e.size[k1], e.size[k2]

	for _, i := range part {
		q := e.queues[i]
		c1, c2 := st.cell(i, k1), st.cell(i, k2)
		if err := q.remove(c1); err != nil {
			return fmt.Errorf("cluster %d toward %d: %w", i, k1, err)
		}
		if err := q.remove(c2); err != nil {
			return fmt.Errorf("cluster %d toward %d: %w", i, k2, err)
		}

		ik1, ik2 := st.at(i, k1), st.at(i, k2)
		v := l.Combine(Side{Similarity: ik1.value, Size: s1}, Side{Similarity: ik2.value, Size: s2})
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %s combined sim(%d,%d) and sim(%d,%d)", ErrInvalidSimilarity, l.Name(), i, k1, i, k2)
		}
		ik1.value = v
		q.insert(c1)

		k1i, k2i := st.at(k1, i), st.at(k2, i)
		v = l.Combine(Side{Similarity: k1i.value, Size: s1}, Side{Similarity: k2i.value, Size: s2})
		if math.IsNaN(v) {
			return fmt.Errorf("%w: %s combined sim(%d,%d) and sim(%d,%d)", ErrInvalidSimilarity, l.Name(), k1, i, k2, i)
		}
		k1i.value = v
	}

	return nil
}

// shardCount caps Parallelism so that every shard gets minShardSize clusters.
func (e *engine) shardCount(count int) int {
	shards := e.cfg.Parallelism
	if limit := count / minShardSize; limit < shards {
		shards = limit
	}

	return shards
}

// forShards splits ids into contiguous parts and runs fn on each concurrently.
func forShards(ids []int, shards int, fn func(shard int, part []int) error) error {
	var g errgroup.Group
	step := (len(ids) + shards - 1) / shards
	for s := 0; s < shards; s++ {
		lo := s * step
		if lo >= len(ids) {
			break
		}
		hi := min(lo+step, len(ids))
		part := ids[lo:hi]
		s := s
		g.Go(func() error {
			return fn(s, part)
		})
	}

	return g.Wait()
}
