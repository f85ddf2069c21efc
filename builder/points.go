// SPDX-License-Identifier: MIT
// Package: hclust/builder
//
// points.go — point-set constructors: Blobs, Line, Grid.
//
// Determinism:
//   • Points are emitted in a stable order (blob-major, index, row-major).
//   • Random draws come only from cfg.rng, one NormFloat64 per coordinate,
//     in emission order; a fixed seed fixes the dataset.

package builder

import "math/rand"

const (
	methodBlobs = "Blobs"
	methodLine  = "Line"
	methodGrid  = "Grid"

	minCount = 1
)

// Dataset is a labelled point set.
type Dataset struct {
	// Points holds one coordinate vector per item, all of equal length.
	Points [][]float64

	// Labels holds one label per item, produced by the configured IDFn.
	Labels []string

	// Groups holds the generating group of every item (blob index for Blobs,
	// 0 otherwise), usable as ground truth for flat cuts.
	Groups []int
}

// Len returns the number of points.
func (d *Dataset) Len() int { return len(d.Points) }

func newDataset(n int) *Dataset {
	return &Dataset{
		Points: make([][]float64, 0, n),
		Labels: make([]string, 0, n),
		Groups: make([]int, 0, n),
	}
}

func (d *Dataset) add(cfg builderConfig, group int, p []float64) {
	d.Labels = append(d.Labels, cfg.idFn(len(d.Points)))
	d.Points = append(d.Points, p)
	d.Groups = append(d.Groups, group)
}

// jitter adds N(0, sigma²) to every coordinate of p.
func jitter(rng *rand.Rand, sigma float64, p []float64) {
	if sigma == 0 {
		return
	}
	for i := range p {
		p[i] += rng.NormFloat64() * sigma
	}
}

// Blobs draws k isotropic Gaussian blobs of perBlob points each in dim
// dimensions. Blob c is centered at c*separation on the first axis and 0
// elsewhere; coordinates are drawn with standard deviation spread.
//
// Errors: ErrTooFewPoints if k, perBlob or dim < 1; ErrNeedRandSource
// without WithSeed/WithRand.
// Complexity: O(k*perBlob*dim).
func Blobs(k, perBlob, dim int, opts ...BuilderOption) (*Dataset, error) {
	if k < minCount || perBlob < minCount || dim < minCount {
		return nil, builderErrorf(methodBlobs, ErrTooFewPoints, "k=%d, perBlob=%d, dim=%d (each must be ≥ %d)", k, perBlob, dim, minCount)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodBlobs, ErrNeedRandSource, "k=%d", k)
	}

	d := newDataset(k * perBlob)
	var c, i int
	for c = 0; c < k; c++ {
		for i = 0; i < perBlob; i++ {
			p := make([]float64, dim)
			p[0] = float64(c) * cfg.separation
			jitter(cfg.rng, cfg.spread, p)
			d.add(cfg, c, p)
		}
	}

	return d, nil
}

// Line places n one-dimensional points at 0, spacing, 2*spacing, ...
// With WithNoise each point is jittered.
//
// Errors: ErrTooFewPoints if n < 1; ErrNeedRandSource if noise > 0 without an RNG.
func Line(n int, opts ...BuilderOption) (*Dataset, error) {
	if n < minCount {
		return nil, builderErrorf(methodLine, ErrTooFewPoints, "n=%d (must be ≥ %d)", n, minCount)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.noise > 0 && cfg.rng == nil {
		return nil, builderErrorf(methodLine, ErrNeedRandSource, "noise=%g", cfg.noise)
	}

	d := newDataset(n)
	for i := 0; i < n; i++ {
		p := []float64{float64(i) * cfg.spacing}
		jitter(cfg.rng, cfg.noise, p)
		d.add(cfg, 0, p)
	}

	return d, nil
}

// Grid places rows×cols two-dimensional points at (r*spacing, c*spacing) in
// row-major order. With WithNoise each point is jittered.
//
// Errors: ErrTooFewPoints if rows or cols < 1; ErrNeedRandSource if noise > 0
// without an RNG.
func Grid(rows, cols int, opts ...BuilderOption) (*Dataset, error) {
	if rows < minCount || cols < minCount {
		return nil, builderErrorf(methodGrid, ErrTooFewPoints, "rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minCount)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.noise > 0 && cfg.rng == nil {
		return nil, builderErrorf(methodGrid, ErrNeedRandSource, "noise=%g", cfg.noise)
	}

	d := newDataset(rows * cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			p := []float64{float64(r) * cfg.spacing, float64(c) * cfg.spacing}
			jitter(cfg.rng, cfg.noise, p)
			d.add(cfg, 0, p)
		}
	}

	return d, nil
}
