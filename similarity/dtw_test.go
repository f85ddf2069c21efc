package similarity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/similarity"
)

func TestDTWDistance(t *testing.T) {
	free := similarity.DTW(0, 0)

	assert.Equal(t, 0.0, free.Distance([]float64{1, 2, 3}, []float64{1, 2, 3}))
	assert.Equal(t, 5.0, free.Distance([]float64{0}, []float64{5}))
	// a one-step shift warps away entirely
	assert.Equal(t, 0.0, free.Distance([]float64{0, 0, 1, 2}, []float64{0, 1, 2, 2}))
	// ...unless every non-diagonal step costs 0.5
	assert.Equal(t, 1.0, similarity.DTW(0, 0.5).Distance([]float64{0, 0, 1, 2}, []float64{0, 1, 2, 2}))
	// unequal lengths stay reachable under a narrow window
	assert.False(t, math.IsInf(similarity.DTW(1, 0).Distance([]float64{0, 1, 2, 3, 4, 5}, []float64{0, 5}), 0))

	assert.Equal(t, 0.0, free.Distance(nil, nil))
	assert.True(t, math.IsInf(free.Distance(nil, []float64{1}), 1))
}

func TestDTWSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := similarity.DTW(2, 0.1)
	for k := 0; k < 50; k++ {
		a, b := make([]float64, 8), make([]float64, 8)
		for i := range a {
			a[i], b[i] = rng.Float64(), rng.Float64()
		}
		assert.InDelta(t, m.Distance(a, b), m.Distance(b, a), 1e-12)
	}
}

func TestDTWOptions(t *testing.T) {
	require.Panics(t, func() { similarity.DTW(-1, 0) })
	require.Panics(t, func() { similarity.DTW(0, -1) })
	require.Panics(t, func() { similarity.DTW(0, math.NaN()) })

	got, err := similarity.ParseMetric("DTW")
	require.NoError(t, err)
	assert.Equal(t, similarity.MetricDTW, got.Name())
	assert.Equal(t, "dtw(window=3,penalty=0.5)", similarity.DTW(3, 0.5).Name())
}

// TestDTWClustersShiftedSeries checks that shifted copies of one shape group
// together before a different shape joins.
func TestDTWClustersShiftedSeries(t *testing.T) {
	series := [][]float64{
		{0, 0, 1, 2, 1, 0, 0, 0}, // bump
		{0, 0, 0, 1, 2, 1, 0, 0}, // bump, shifted
		{0, 0, 0, 0, 1, 2, 1, 0}, // bump, shifted twice
		{2, 2, 2, 0, 0, 0, 2, 2}, // dip
	}
	fn, err := similarity.FromPoints(series, similarity.DTW(0, 0))
	require.NoError(t, err)

	merges, err := cluster.Compute(len(series), fn, cluster.WithLinkage(cluster.Average))
	require.NoError(t, err)
	require.Len(t, merges, 3)
	assert.Equal(t, 3, merges[2].Absorbed)
	assert.Equal(t, 0.0, merges[0].Similarity)
	assert.Equal(t, 0.0, merges[1].Similarity)
}

func TestFromPointsDTWUnequalLengths(t *testing.T) {
	series := [][]float64{
		{0, 1, 2},
		{0, 1, 1, 2},
		{5, 5},
	}
	fn, err := similarity.FromPoints(series, similarity.DTW(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, fn(0, 1))
	assert.Less(t, fn(0, 2), 0.0)

	merges, err := cluster.Compute(len(series), fn)
	require.NoError(t, err)
	require.Len(t, merges, 2)
	assert.Equal(t, [2]int{0, 1}, [2]int{merges[0].Survivor, merges[0].Absorbed})

	// lengths still have to match for vector metrics, and no series may be empty
	_, err = similarity.FromPoints(series, similarity.Euclidean)
	require.ErrorIs(t, err, similarity.ErrRaggedPoints)
	_, err = similarity.FromPoints([][]float64{{1, 2}, {}}, similarity.DTW(0, 0))
	require.ErrorIs(t, err, similarity.ErrRaggedPoints)
}
