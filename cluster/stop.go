// SPDX-License-Identifier: MIT

package cluster

// StopFunc is evaluated once per iteration on the candidate merge similarity,
// before the merge is applied. Returning true ends the run; the candidate is
// discarded.
type StopFunc func(similarity float64) bool

// Never runs the clustering to completion.
func Never(float64) bool { return false }

// Below stops once the best remaining similarity is strictly below threshold.
func Below(threshold float64) StopFunc {
	return func(similarity float64) bool {
		return similarity < threshold
	}
}

// Any stops as soon as one of fs fires. nil entries are skipped.
func Any(fs ...StopFunc) StopFunc {
	return func(similarity float64) bool {
		for _, f := range fs {
			if f != nil && f(similarity) {
				return true
			}
		}

		return false
	}
}
