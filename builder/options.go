// SPDX-License-Identifier: MIT
// Package: hclust/builder
//
// options.go — functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn ("0","1","2",...)
//   • rng        = nil  (Blobs and any noise > 0 then fail with ErrNeedRandSource)
//   • spread     = 0.5  (blob standard deviation)
//   • separation = 10   (distance between consecutive blob centers)
//   • spacing    = 1    (Line/Grid step)
//   • noise      = 0    (Line/Grid jitter standard deviation)

package builder

import "math/rand"

const (
	defaultSpread     = 0.5
	defaultSeparation = 10.0
	defaultSpacing    = 1.0
	defaultNoise      = 0.0
)

// BuilderOption customizes a constructor by mutating builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand
	spread     float64 // > 0
	separation float64 // > 0
	spacing    float64 // > 0
	noise      float64 // >= 0
}

// newBuilderConfig applies options over deterministic defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		spread:     defaultSpread,
		separation: defaultSeparation,
		spacing:    defaultSpacing,
		noise:      defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the label generator: idx -> string. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpread sets the per-axis standard deviation of Blobs. Panics if sigma <= 0.
func WithSpread(sigma float64) BuilderOption {
	if sigma <= 0 {
		panic("builder: WithSpread(sigma<=0)")
	}
	return func(c *builderConfig) {
		c.spread = sigma
	}
}

// WithSeparation sets the distance between consecutive blob centers.
// Panics if d <= 0.
func WithSeparation(d float64) BuilderOption {
	if d <= 0 {
		panic("builder: WithSeparation(d<=0)")
	}
	return func(c *builderConfig) {
		c.separation = d
	}
}

// WithSpacing sets the Line/Grid step. Panics if step <= 0.
func WithSpacing(step float64) BuilderOption {
	if step <= 0 {
		panic("builder: WithSpacing(step<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = step
	}
}

// WithNoise sets the Gaussian jitter applied to Line/Grid coordinates.
// Panics if sigma < 0. Noise > 0 requires an RNG.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		c.noise = sigma
	}
}
