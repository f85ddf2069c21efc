// SPDX-License-Identifier: MIT

// Public types, functional options and sentinel
// errors of the agglomerative clustering engine.
//
// Errors:
//
//	ErrInvalidItemCount    - item count is < 1 or too large for the dense store.
//	ErrNilSimilarity       - the similarity collaborator is nil.
//	ErrUnsupportedLinkage  - a linkage name could not be resolved.
//	ErrNilLinkage          - WithLinkage was given a nil Linkage.
//	ErrInvalidSimilarity   - the similarity collaborator or the linkage returned NaN.
//	ErrEmptyQueue          - invariant: peek on an empty per-cluster queue.
//	ErrMissingEntry        - invariant: removal of an entry the queue does not hold.
//	ErrNoActiveClusters    - invariant: best-pair scan found fewer than two clusters.
//	ErrInvalidClusterCount - dendrogram cut asked for an impossible cluster count.
//	ErrInvalidMerge        - a merge list does not describe a valid dendrogram.

package cluster

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the clustering engine and dendrogram helpers.
var (
	// ErrInvalidItemCount indicates that N < 1 (or N exceeds MaxItems).
	ErrInvalidItemCount = errors.New("cluster: item count out of range")

	// ErrNilSimilarity indicates that Compute was called with a nil SimilarityFunc.
	ErrNilSimilarity = errors.New("cluster: similarity function is nil")

	// ErrUnsupportedLinkage indicates an unknown linkage name.
	// It is always reported before the similarity store is built.
	ErrUnsupportedLinkage = errors.New("cluster: unsupported linkage")

	// ErrNilLinkage indicates that a nil Linkage was configured.
	ErrNilLinkage = errors.New("cluster: linkage is nil")

	// ErrInvalidSimilarity indicates that the similarity function, or the
	// linkage combining two similarities, produced NaN.
	ErrInvalidSimilarity = errors.New("cluster: similarity is NaN")

	// ErrEmptyQueue signals a peek on an empty queue while two or more clusters
	// are active. Store and queues are out of sync; the run is aborted.
	ErrEmptyQueue = errors.New("cluster: empty queue")

	// ErrMissingEntry signals removal of an entry the queue does not hold.
	ErrMissingEntry = errors.New("cluster: queue entry not found")

	// ErrNoActiveClusters signals a best-pair scan with fewer than two active clusters.
	ErrNoActiveClusters = errors.New("cluster: no active cluster pair")

	// ErrInvalidClusterCount indicates that a flat cut cannot produce the requested k.
	ErrInvalidClusterCount = errors.New("cluster: invalid cluster count")

	// ErrInvalidMerge indicates a merge list that cannot be replayed over N items.
	ErrInvalidMerge = errors.New("cluster: invalid merge")
)

// MaxItems bounds N so that every cell of the N×N store is addressable by int32.
const MaxItems = 46340

// SimilarityFunc returns the similarity of item i toward item j.
// Larger values mean "more alike". It is never called with i == j.
type SimilarityFunc func(i, j int) float64

// Merge is one dendrogram edge: Survivor absorbed Absorbed at Similarity.
// Size is the number of original items in the survivor after the merge.
type Merge struct {
	Survivor   int     // surviving original index; identifies the merged cluster
	Absorbed   int     // retired original index
	Similarity float64 // similarity of the pair at merge time
	Size       int     // items in the merged cluster
}

// Triple returns the merge as (survivor, absorbed, similarity).
func (m Merge) Triple() (int, int, float64) {
	return m.Survivor, m.Absorbed, m.Similarity
}

// String implements fmt.Stringer.
func (m Merge) String() string {
	return fmt.Sprintf("(%d,%d,%g)", m.Survivor, m.Absorbed, m.Similarity)
}

// Options configures a Compute run.
//
// Linkage     – rule folding the absorbed cluster into the survivor (default Single).
// LinkageName – optional name resolved by ParseLinkage at the start of Compute;
//
//	when non-empty it overrides Linkage.
//
// Stop        – early-termination predicate (default Never).
// Parallelism – number of shards for the best-pair scan and queue update (default 1).
// Logger      – structured logger (default zerolog.Nop()).
// Ctx         – checked between iterations (default context.Background()).
type Options struct {
	Linkage     Linkage
	LinkageName string
	Stop        StopFunc
	Parallelism int
	Logger      zerolog.Logger
	Ctx         context.Context
}

// Option represents a functional option for configuring Compute.
type Option func(*Options)

// DefaultOptions returns the run configuration used when no options are given:
// single linkage, never stop, sequential, silent.
func DefaultOptions() Options {
	return Options{
		Linkage:     Single,
		Stop:        Never,
		Parallelism: 1,
		Logger:      zerolog.Nop(),
		Ctx:         context.Background(),
	}
}

// WithLinkage sets the linkage rule. A nil rule is reported by Compute as ErrNilLinkage.
func WithLinkage(l Linkage) Option {
	return func(o *Options) {
		o.Linkage = l
		o.LinkageName = ""
	}
}

// WithLinkageName selects a linkage by name ("single", "complete", "average").
// Resolution happens in Compute so that an unknown name surfaces as
// ErrUnsupportedLinkage instead of a panic.
func WithLinkageName(name string) Option {
	return func(o *Options) {
		o.LinkageName = name
	}
}

// WithStop sets the stop predicate. nil restores Never.
func WithStop(stop StopFunc) Option {
	return func(o *Options) {
		if stop == nil {
			stop = Never
		}
		o.Stop = stop
	}
}

// WithParallelism splits the best-pair scan and the queue update into p shards.
// Results are identical to the sequential run. Panics if p < 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic("cluster: WithParallelism: p must be >= 1")
	}
	return func(o *Options) {
		o.Parallelism = p
	}
}

// WithLogger attaches a structured logger. Merges are logged at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithContext sets a context that is checked between iterations.
// Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("cluster: WithContext(nil)")
	}
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// gatherOptions applies opts over DefaultOptions and resolves the linkage.
func gatherOptions(opts ...Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.LinkageName != "" {
		l, err := ParseLinkage(cfg.LinkageName)
		if err != nil {
			return cfg, err
		}
		cfg.Linkage = l
	}
	if cfg.Linkage == nil {
		return cfg, ErrNilLinkage
	}

	return cfg, nil
}
