// SPDX-License-Identifier: MIT

// Package similarity: sentinel errors and functional options.

package similarity

import (
	"errors"
	"math"

	"github.com/katalvlaran/hclust/matrix"
)

var (
	// ErrNoPoints is returned by FromPoints when the point set is empty.
	ErrNoPoints = errors.New("similarity: no points")

	// ErrRaggedPoints signals vectors of unequal (or zero) length.
	ErrRaggedPoints = errors.New("similarity: points have unequal dimension")

	// ErrNonFinite signals a NaN or ±Inf coordinate, or a NaN table cell.
	ErrNonFinite = errors.New("similarity: non-finite value")

	// ErrNilMetric is returned when FromPoints receives a nil Metric.
	ErrNilMetric = errors.New("similarity: metric is nil")

	// ErrUnknownMetric is returned by ParseMetric for an unrecognised name.
	ErrUnknownMetric = errors.New("similarity: unknown metric")
)

// Option configures table ingestion.
type Option func(*Options)

// Options holds the resolved ingestion policy.
type Options struct {
	// Tolerance is the symmetry tolerance passed to matrix.ValidateSymmetric.
	Tolerance float64

	// CheckSymmetry enables the symmetry check (default true).
	CheckSymmetry bool
}

// DefaultOptions returns the default ingestion policy.
func DefaultOptions() Options {
	return Options{
		Tolerance:     matrix.DefaultEpsilon,
		CheckSymmetry: true,
	}
}

// WithTolerance sets the symmetry tolerance. Panics on negative, NaN or Inf.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic("similarity: WithTolerance: tol must be finite, non-negative")
	}
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithAsymmetric disables the symmetry check; both directions of every pair
// are then used as given.
func WithAsymmetric() Option {
	return func(o *Options) {
		o.CheckSymmetry = false
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
