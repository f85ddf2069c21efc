// Package builder generates deterministic point clouds and distance tables
// for tests, benchmarks, examples and the hclust demo command.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, label scheme, spread, spacing and noise.
//   - Point-set constructors returning a *Dataset:
//     – Blobs:  k Gaussian blobs spaced along the first axis.
//     – Line:   n points on a line, optionally jittered.
//     – Grid:   rows×cols lattice in row-major order.
//   - Label schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, PrefixIDFn.
//   - DistanceTable: the dense pairwise distance matrix of a point set under
//     a similarity.Metric, ready for similarity.FromDistanceMatrix.
//
// Guarantees:
//
//   - Same options and seed produce the same dataset, point for point.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with the method name.
package builder
