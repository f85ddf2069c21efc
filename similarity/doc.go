// Package similarity adapts caller data into the pairwise similarity
// function consumed by cluster.Compute.
//
// Three sources are supported:
//
//   - FromMatrix: a square similarity table (larger is more alike).
//   - FromDistanceMatrix: a square distance table; values are negated so the
//     closest pair is the most similar one.
//   - FromPoints: a set of equal-length vectors and a Metric (Euclidean,
//     SquaredEuclidean, Manhattan, Cosine). Distances are computed with
//     gonum.org/v1/gonum/floats and negated.
//
// Tables are snapshotted on construction; later writes to the source matrix
// are not observed by the returned function. Symmetrize averages the two
// directions of an asymmetric function.
package similarity
