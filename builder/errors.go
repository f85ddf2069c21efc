// SPDX-License-Identifier: MIT
// Package: hclust/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w (see builderErrorf).
//   • Option constructors panic on meaningless input; constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates that a size parameter (k, per-blob count, n,
// rows, cols, dimension) is smaller than the allowed minimum.
var ErrTooFewPoints = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (WithSeed or WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadDimension indicates points of unequal dimension passed to DistanceTable.
var ErrBadDimension = errors.New("builder: points have unequal dimension")

// builderErrorf wraps err with the constructor name and a formatted detail:
// "<method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
