// Package cluster provides greedy agglomerative hierarchical clustering over
// N items described only by a pairwise similarity function.
//
// Overview:
//
//   - Compute repeatedly merges the two most similar active clusters until
//     N-1 merges have been made or a caller-supplied stop predicate fires.
//   - The result is the ordered list of merges (survivor, absorbed, similarity);
//     a cluster is always named by the original index that survived.
//   - Similarities live in a dense N×N store; every cluster keeps a max-heap of
//     its similarity toward every other active cluster.
//
// Linkage:
//
//   - Single:   combined = max(a, b)   (nearest neighbour)
//   - Complete: combined = min(a, b)   (farthest neighbour)
//   - Average:  size-weighted mean (UPGMA)
//   - Custom rules implement Linkage or use LinkageFunc.
//
// Determinism:
//
//   - Among equal best similarities the lowest active cluster index wins.
//   - Inside one cluster's queue equal similarities go to the lowest partner index.
//   - WithParallelism does not change the result.
//
// Dendrogram helpers:
//
//   - Labels(n, merges, k) cuts the merge list into k flat clusters.
//   - LabelsAt(n, merges, t) keeps the merges made at similarity >= t.
//   - Validate(n, merges) checks a merge list before replaying it.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidItemCount, ErrNilSimilarity: bad input, reported before any work.
//   - ErrUnsupportedLinkage, ErrNilLinkage: bad configuration, reported before
//     the similarity function is called.
//   - ErrInvalidSimilarity: the similarity function returned NaN.
//   - ErrEmptyQueue, ErrMissingEntry, ErrNoActiveClusters: broken internal
//     invariants; the run is aborted.
//
// Example usage:
//
//	dist := [][]float64{{0, 1, 4}, {1, 0, 2}, {4, 2, 0}}
//	merges, err := cluster.Compute(3, func(i, j int) float64 { return -dist[i][j] },
//	    cluster.WithLinkageName("complete"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(merges) // [(0,1,-1) (0,2,-4)]
package cluster
