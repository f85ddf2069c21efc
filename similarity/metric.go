// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Metric names accepted by ParseMetric.
const (
	MetricEuclidean        = "euclidean"
	MetricSquaredEuclidean = "sqeuclidean"
	MetricManhattan        = "manhattan"
	MetricCosine           = "cosine"
)

// Metric measures the distance between two vectors of equal length.
// Distance must be non-negative and symmetric in its arguments.
type Metric interface {
	Name() string
	Distance(a, b []float64) float64
}

type euclidean struct{}

func (euclidean) Name() string { return MetricEuclidean }

func (euclidean) Distance(a, b []float64) float64 { return floats.Distance(a, b, 2) }

type squaredEuclidean struct{}

func (squaredEuclidean) Name() string { return MetricSquaredEuclidean }

func (squaredEuclidean) Distance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

type manhattan struct{}

func (manhattan) Name() string { return MetricManhattan }

func (manhattan) Distance(a, b []float64) float64 { return floats.Distance(a, b, 1) }

// cosine distance is 1 - cos(a,b); a zero vector is orthogonal to everything.
type cosine struct{}

func (cosine) Name() string { return MetricCosine }

func (cosine) Distance(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	c := floats.Dot(a, b) / (na * nb)

	return 1 - math.Max(-1, math.Min(1, c))
}

// elastic marks metrics defined on vectors of different lengths.
type elastic interface{ elastic() }

// Built-in metrics.
var (
	Euclidean        Metric = euclidean{}
	SquaredEuclidean Metric = squaredEuclidean{}
	Manhattan        Metric = manhattan{}
	Cosine           Metric = cosine{}
)

// ParseMetric resolves a metric name, ignoring case and surrounding spaces.
// "dtw" yields the unconstrained DTW metric.
// "l2" and "l1" are accepted as aliases of euclidean and manhattan.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case MetricEuclidean, "l2":
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricManhattan, "l1":
		return Manhattan, nil
	case MetricCosine:
		return Cosine, nil
	case MetricDTW:
		return DTW(0, 0), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}
