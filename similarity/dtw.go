// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"
)

// MetricDTW is the ParseMetric name of the unconstrained DTW metric.
const MetricDTW = "dtw"

// dtw is Dynamic Time Warping over two rolling DP rows:
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +Inf
//	D[i][j] = |a[i-1]-b[j-1]| + min(D[i-1][j]+p, D[i][j-1]+p, D[i-1][j-1])
//
// Cells with |i-j| > window are +Inf. Time O(n·m), memory O(m).
type dtw struct {
	window  int     // 0 = unconstrained
	penalty float64 // added to every non-diagonal step
}

// DTW returns a Dynamic Time Warping metric for time series. window bounds
// |i-j| along the warping path (0 = unconstrained; widened to |n-m| so a
// path always exists) and slopePenalty is charged on every insertion or
// deletion step. Series may differ in length, also through FromPoints.
// Panics on a negative window or a negative/NaN penalty.
func DTW(window int, slopePenalty float64) Metric {
	if window < 0 {
		panic("similarity: DTW: window must be >= 0")
	}
	if slopePenalty < 0 || math.IsNaN(slopePenalty) {
		panic("similarity: DTW: slopePenalty must be >= 0")
	}

	return dtw{window: window, penalty: slopePenalty}
}

func (dtw) elastic() {}

func (d dtw) Name() string {
	if d.window == 0 && d.penalty == 0 {
		return MetricDTW
	}

	return fmt.Sprintf("%s(window=%d,penalty=%g)", MetricDTW, d.window, d.penalty)
}

func (d dtw) Distance(a, b []float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		if n == m {
			return 0
		}
		return math.Inf(1)
	}

	w := d.window
	if w == 0 {
		w = max(n, m)
	}
	w = max(w, absInt(n-m))

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	var i, j int
	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if absInt(i-j) > w {
				curr[j] = inf
				continue
			}
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j]+d.penalty, curr[j-1]+d.penalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
