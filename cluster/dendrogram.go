// SPDX-License-Identifier: MIT

// Dendrogram helpers: replay a merge list into flat cluster labels.
//
// Replays use a disjoint-set (union-find) with path compression and union by
// rank. Labels are dense (0..k-1) and numbered in order of first appearance
// over items 0..n-1, so they are stable for a given merge list.

package cluster

import "fmt"

// Validate checks that merges describe a dendrogram prefix over n items:
// every index is in range, no merge is a self-merge, no cluster is absorbed
// twice or used after being absorbed, and there are at most n-1 merges.
//
// Complexity: O(n + len(merges)).
func Validate(n int, merges []Merge) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidItemCount, n)
	}
	if len(merges) > n-1 {
		return fmt.Errorf("%w: %d merges for %d items", ErrInvalidMerge, len(merges), n)
	}

	retired := make([]bool, n)
	for k, m := range merges {
		switch {
		case m.Survivor < 0 || m.Survivor >= n || m.Absorbed < 0 || m.Absorbed >= n:
			return fmt.Errorf("%w: merge %d %v index out of range", ErrInvalidMerge, k, m)
		case m.Survivor == m.Absorbed:
			return fmt.Errorf("%w: merge %d %v merges a cluster with itself", ErrInvalidMerge, k, m)
		case retired[m.Survivor] || retired[m.Absorbed]:
			return fmt.Errorf("%w: merge %d %v uses a retired cluster", ErrInvalidMerge, k, m)
		}
		retired[m.Absorbed] = true
	}

	return nil
}

// Labels cuts the dendrogram into k flat clusters by replaying the first n-k
// merges. It returns one label per item.
//
// Errors:
//   - ErrInvalidClusterCount if k is outside [1, n] or fewer than n-k merges exist
//     (for example because the run was stopped early).
//   - ErrInvalidMerge / ErrInvalidItemCount from Validate.
func Labels(n int, merges []Merge, k int) ([]int, error) {
	if err := Validate(n, merges); err != nil {
		return nil, err
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("%w: k=%d for %d items", ErrInvalidClusterCount, k, n)
	}
	if len(merges) < n-k {
		return nil, fmt.Errorf("%w: k=%d needs %d merges, have %d", ErrInvalidClusterCount, k, n-k, len(merges))
	}

	return replay(n, merges[:n-k]), nil
}

// LabelsAt replays merges in order while their similarity is >= threshold and
// returns the labels together with the resulting number of clusters.
func LabelsAt(n int, merges []Merge, threshold float64) ([]int, int, error) {
	if err := Validate(n, merges); err != nil {
		return nil, 0, err
	}

	cut := 0
	for cut < len(merges) && merges[cut].Similarity >= threshold {
		cut++
	}

	return replay(n, merges[:cut]), n - cut, nil
}

// replay unions every merge and assigns dense labels by first appearance.
func replay(n int, merges []Merge) []int {
	d := newDisjointSet(n)
	for _, m := range merges {
		d.union(m.Survivor, m.Absorbed)
	}

	labels := make([]int, n)
	byRoot := make(map[int]int, n-len(merges))
	for i := 0; i < n; i++ {
		r := d.find(i)
		l, ok := byRoot[r]
		if !ok {
			l = len(byRoot)
			byRoot[r] = l
		}
		labels[i] = l
	}

	return labels
}

// disjointSet is a union-find over 0..n-1.
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find is iterative with path halving to avoid deep recursion.
func (d *disjointSet) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union attaches the lower-rank root under the higher-rank one.
func (d *disjointSet) union(u, v int) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
		return
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
}
