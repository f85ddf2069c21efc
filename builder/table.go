// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/hclust/matrix"
	"github.com/katalvlaran/hclust/similarity"
)

const methodDistanceTable = "DistanceTable"

// DistanceTable returns the symmetric n×n matrix of metric distances between
// points, with a zero diagonal. The upper triangle is computed and mirrored.
//
// Errors: ErrTooFewPoints for an empty set, ErrBadDimension for ragged or
// empty vectors, similarity.ErrNilMetric for a nil metric, matrix.ErrNaNInf
// if a distance is not finite.
// Complexity: O(n²·dim) time, O(n²) space.
func DistanceTable(points [][]float64, metric similarity.Metric) (*matrix.Dense, error) {
	if metric == nil {
		return nil, builderErrorf(methodDistanceTable, similarity.ErrNilMetric, "metric")
	}
	n := len(points)
	if n < minCount {
		return nil, builderErrorf(methodDistanceTable, ErrTooFewPoints, "n=%d", n)
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim || len(p) == 0 {
			return nil, builderErrorf(methodDistanceTable, ErrBadDimension, "point %d has %d coordinates, want %d", i, len(p), dim)
		}
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		dist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist = metric.Distance(points[i], points[j])
			if err = m.Set(i, j, dist); err != nil {
				return nil, builderErrorf(methodDistanceTable, err, "(%d,%d)", i, j)
			}
			_ = m.Set(j, i, dist) // same value, already accepted
		}
	}

	return m, nil
}
