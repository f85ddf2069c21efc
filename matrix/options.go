// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions helper that resolves setters against defaults.
//
// Numeric policy:
//   - validateNaNInf rejects NaN and ±Inf on Set and ingestion.
//   - allowInf is a narrow exception: ±Inf accepted (e.g. "never merge"
//     similarities), NaN still rejected.
//   - eps is the tolerance used by structural validators.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultAllowInf keeps ±Inf rejected under validation.
	DefaultAllowInf = false
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	allowInf       bool    // DefaultAllowInf
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// WithEpsilon sets the tolerance used by ValidateSymmetric/ValidateZeroDiagonal
// callers that consume Options. Panics on negative, NaN or Inf eps.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.eps = eps
	}
}

// WithValidateNaNInf enables finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = true
	}
}

// WithNoValidateNaNInf disables finite-value validation entirely.
func WithNoValidateNaNInf() Option {
	return func(o *Options) {
		o.validateNaNInf = false
	}
}

// WithAllowInf accepts ±Inf while still rejecting NaN.
func WithAllowInf() Option {
	return func(o *Options) {
		o.allowInf = true
	}
}

// NewMatrixOptions resolves option setters against documented defaults.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies setters on top of defaults; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		allowInf:       DefaultAllowInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// accepts reports whether v passes the numeric policy.
func (o Options) accepts(v float64) bool {
	if !o.validateNaNInf {
		return true
	}
	if math.IsNaN(v) {
		return false
	}

	return o.allowInf || !math.IsInf(v, 0)
}
