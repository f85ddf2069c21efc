// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"math"
	"strings"
)

// Linkage names accepted by ParseLinkage.
const (
	LinkageSingle   = "single"
	LinkageComplete = "complete"
	LinkageAverage  = "average"
)

// Side describes one half of a merge as seen from a third cluster i:
// the similarity of i toward that half, and the half's item count.
type Side struct {
	Similarity float64
	Size       int
}

// Linkage folds the similarities toward the two merged clusters into one.
// a is the survivor side, b the absorbed side. Combine must be pure: it is
// applied to both matrix directions and may run on several goroutines.
// A NaN result aborts Compute with ErrInvalidSimilarity.
type Linkage interface {
	Name() string
	Combine(a, b Side) float64
}

// LinkageFunc adapts a plain function to the Linkage interface.
type LinkageFunc struct {
	ID string
	Fn func(a, b Side) float64
}

// Name implements Linkage.
func (f LinkageFunc) Name() string { return f.ID }

// Combine implements Linkage.
func (f LinkageFunc) Combine(a, b Side) float64 { return f.Fn(a, b) }

type singleLinkage struct{}

func (singleLinkage) Name() string { return LinkageSingle }

// Combine keeps the closer pair (nearest neighbour).
func (singleLinkage) Combine(a, b Side) float64 {
	return math.Max(a.Similarity, b.Similarity)
}

type completeLinkage struct{}

func (completeLinkage) Name() string { return LinkageComplete }

// Combine keeps the farther pair (farthest neighbour).
func (completeLinkage) Combine(a, b Side) float64 {
	return math.Min(a.Similarity, b.Similarity)
}

type averageLinkage struct{}

func (averageLinkage) Name() string { return LinkageAverage }

// Combine returns the size-weighted mean (UPGMA). An infinite side dominates
// a finite one; +Inf against -Inf yields -Inf.
func (averageLinkage) Combine(a, b Side) float64 {
	if math.IsInf(a.Similarity, 0) && math.IsInf(b.Similarity, 0) && a.Similarity != b.Similarity {
		return math.Inf(-1)
	}
	na, nb := float64(a.Size), float64(b.Size)
	if na+nb == 0 {
		return (a.Similarity + b.Similarity) / 2
	}

	return (a.Similarity*na + b.Similarity*nb) / (na + nb)
}

// Built-in linkage rules.
var (
	Single   Linkage = singleLinkage{}
	Complete Linkage = completeLinkage{}
	Average  Linkage = averageLinkage{}
)

// ParseLinkage resolves a linkage name, ignoring case and surrounding space.
// Unknown names return ErrUnsupportedLinkage.
func ParseLinkage(name string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LinkageSingle:
		return Single, nil
	case LinkageComplete:
		return Complete, nil
	case LinkageAverage:
		return Average, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLinkage, name)
	}
}
