// Package matrix offers the dense float64 table used to ingest pairwise
// distance or similarity data before clustering.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix with bounds-checked At/Set that return
//     sentinel errors instead of panicking.
//   - A numeric policy (NaN/Inf rejection, epsilon) configured through
//     functional options.
//   - Validators for the structure a pairwise table must have: square,
//     symmetric within eps, zero diagonal for distances.
//
// Dense tables cost O(N²) memory, the same as the clustering store they feed.
//
// See the examples in this package and in similarity for usage patterns.
package matrix
