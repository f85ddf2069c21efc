// Package hclust is a small, deterministic toolkit for greedy agglomerative
// hierarchical clustering over pairwise similarities.
//
// 🚀 What is hclust?
//
//	Give it N items and a function sim(i, j); it repeatedly merges the two
//	most similar clusters and returns the ordered merge list:
//		• Dense similarity store + one max-heap per cluster: O(N² log N)
//		• Linkages: single (max), complete (min), average (UPGMA), or your own
//		• Stop predicates: threshold, custom, or run to a single cluster
//		• Optional sharded best-pair scan, identical results to the sequential run
//		• Dendrogram cuts: k clusters or a similarity threshold
//
// ✨ Guarantees
//
//   - Deterministic – ties go to the lowest cluster index, then lowest partner
//   - Survivor keeps the lower index; absorbed indices never reappear
//   - sim(i, i) is never consulted
//   - Errors, not panics – option constructors are the only panic sites
//
// Packages:
//
//	cluster/    — Compute, linkages, stop predicates, Labels/LabelsAt/Validate
//	similarity/ — SimilarityFunc adapters: tables, distance tables, point sets
//	matrix/     — dense float64 tables with NaN/Inf policy and validators
//	builder/    — seeded point clouds and distance tables for tests and demos
//	cmd/hclust  — CLI: cluster a YAML/JSON document or a seeded demo
//
// Quick example (distance → similarity by negation):
//
//	a ──1── b ──2── c
//
//	single linkage merges (a,b) at -1, then (a,c) at -2.
//
//	go get github.com/katalvlaran/hclust
package hclust
