// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
)

// FromMatrix snapshots a square similarity table. The diagonal is ignored.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry
// (unless WithAsymmetric), ErrNonFinite for a NaN off-diagonal cell.
// Complexity: O(n²) time and space.
func FromMatrix(m matrix.Matrix, opts ...Option) (cluster.SimilarityFunc, error) {
	cells, n, err := snapshot(m, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("FromMatrix: %w", err)
	}

	return func(i, j int) float64 { return cells[i*n+j] }, nil
}

// FromDistanceMatrix snapshots a square distance table and negates it, so the
// closest pair becomes the most similar one.
func FromDistanceMatrix(m matrix.Matrix, opts ...Option) (cluster.SimilarityFunc, error) {
	cells, n, err := snapshot(m, gatherOptions(opts...))
	if err != nil {
		return nil, fmt.Errorf("FromDistanceMatrix: %w", err)
	}

	return func(i, j int) float64 { return -cells[i*n+j] }, nil
}

func snapshot(m matrix.Matrix, o Options) ([]float64, int, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, 0, err
	}
	if o.CheckSymmetry {
		if err := matrix.ValidateSymmetric(m, o.Tolerance); err != nil {
			return nil, 0, err
		}
	}

	n := m.Rows()
	cells := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, 0, err
			}
			if math.IsNaN(v) {
				return nil, 0, fmt.Errorf("(%d,%d): %w", i, j, ErrNonFinite)
			}
			cells[i*n+j] = v
		}
	}

	return cells, n, nil
}

// FromPoints returns the negated metric distance between points i and j.
// The points are copied; distances are computed on demand. Points must be
// non-empty and share one dimension, except under DTW, which compares series
// of different lengths.
//
// Errors: ErrNilMetric, ErrNoPoints, ErrRaggedPoints, ErrNonFinite.
func FromPoints(points [][]float64, metric Metric) (cluster.SimilarityFunc, error) {
	if metric == nil {
		return nil, ErrNilMetric
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	_, anyLen := metric.(elastic)
	dim := len(points[0])
	cp := make([][]float64, len(points))
	for i, p := range points {
		if len(p) == 0 {
			return nil, fmt.Errorf("FromPoints: point %d is empty: %w", i, ErrRaggedPoints)
		}
		if !anyLen && len(p) != dim {
			return nil, fmt.Errorf("FromPoints: point %d has %d coordinates, want %d: %w", i, len(p), dim, ErrRaggedPoints)
		}
		for _, x := range p {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("FromPoints: point %d: %w", i, ErrNonFinite)
			}
		}
		cp[i] = append([]float64(nil), p...)
	}

	return func(i, j int) float64 { return -metric.Distance(cp[i], cp[j]) }, nil
}

// Symmetrize returns (fn(i,j) + fn(j,i)) / 2. fn is consulted twice per call.
func Symmetrize(fn cluster.SimilarityFunc) cluster.SimilarityFunc {
	if fn == nil {
		return nil
	}

	return func(i, j int) float64 { return (fn(i, j) + fn(j, i)) / 2 }
}
