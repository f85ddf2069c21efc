package similarity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/matrix"
	"github.com/katalvlaran/hclust/similarity"
)

func TestMetrics(t *testing.T) {
	a, b := []float64{0, 0}, []float64{3, 4}

	assert.InDelta(t, 5.0, similarity.Euclidean.Distance(a, b), 1e-12)
	assert.InDelta(t, 25.0, similarity.SquaredEuclidean.Distance(a, b), 1e-9)
	assert.InDelta(t, 7.0, similarity.Manhattan.Distance(a, b), 1e-12)

	x := []float64{1, 0}
	assert.InDelta(t, 1.0, similarity.Cosine.Distance(x, []float64{0, 1}), 1e-12)
	assert.InDelta(t, 0.0, similarity.Cosine.Distance(x, []float64{2, 0}), 1e-12)
	assert.InDelta(t, 2.0, similarity.Cosine.Distance(x, []float64{-1, 0}), 1e-12)
	assert.Equal(t, 1.0, similarity.Cosine.Distance(x, []float64{0, 0}))
}

func TestParseMetric(t *testing.T) {
	cases := map[string]similarity.Metric{
		"euclidean":   similarity.Euclidean,
		" L2 ":        similarity.Euclidean,
		"SQEuclidean": similarity.SquaredEuclidean,
		"manhattan":   similarity.Manhattan,
		"l1":          similarity.Manhattan,
		"Cosine":      similarity.Cosine,
	}
	for name, want := range cases {
		got, err := similarity.ParseMetric(name)
		require.NoError(t, err, name)
		assert.Equal(t, want.Name(), got.Name(), name)
	}

	_, err := similarity.ParseMetric("chebyshev")
	require.ErrorIs(t, err, similarity.ErrUnknownMetric)
}

func TestFromDistanceMatrix(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})
	require.NoError(t, err)

	fn, err := similarity.FromDistanceMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, -1.0, fn(0, 1))
	assert.Equal(t, -2.0, fn(2, 1))

	// the snapshot does not follow later writes
	require.NoError(t, m.Set(0, 1, 9))
	assert.Equal(t, -1.0, fn(0, 1))

	merges, err := cluster.Compute(3, fn)
	require.NoError(t, err)
	require.Equal(t, []cluster.Merge{
		{Survivor: 0, Absorbed: 1, Similarity: -1, Size: 2},
		{Survivor: 0, Absorbed: 2, Similarity: -2, Size: 3},
	}, merges)
}

func TestFromMatrixValidation(t *testing.T) {
	_, err := similarity.FromMatrix(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = similarity.FromMatrix(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	skew, err := matrix.NewFromRows([][]float64{{0, 1}, {2, 0}})
	require.NoError(t, err)
	_, err = similarity.FromMatrix(skew)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	fn, err := similarity.FromMatrix(skew, similarity.WithAsymmetric())
	require.NoError(t, err)
	assert.Equal(t, 1.0, fn(0, 1))
	assert.Equal(t, 2.0, fn(1, 0))
	assert.Equal(t, 1.5, similarity.Symmetrize(fn)(1, 0))

	_, err = similarity.FromMatrix(skew, similarity.WithTolerance(1))
	require.NoError(t, err)

	nan, err := matrix.NewDense(2, 2, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, nan.Set(0, 1, math.NaN()))
	_, err = similarity.FromMatrix(nan, similarity.WithAsymmetric())
	require.ErrorIs(t, err, similarity.ErrNonFinite)

	require.Panics(t, func() { similarity.WithTolerance(-1) })
}

func TestFromPoints(t *testing.T) {
	points := [][]float64{{0}, {1}, {3}, {7}}
	fn, err := similarity.FromPoints(points, similarity.Euclidean)
	require.NoError(t, err)

	points[0][0] = 100 // copied on construction
	assert.Equal(t, -1.0, fn(0, 1))

	merges, err := cluster.Compute(len(points), fn)
	require.NoError(t, err)
	want := []string{"(0,1,-1)", "(0,2,-2)", "(0,3,-4)"}
	require.Len(t, merges, len(want))
	for i, m := range merges {
		assert.Equal(t, want[i], m.String())
	}
}

func TestFromPointsErrors(t *testing.T) {
	_, err := similarity.FromPoints([][]float64{{1}}, nil)
	require.ErrorIs(t, err, similarity.ErrNilMetric)

	_, err = similarity.FromPoints(nil, similarity.Euclidean)
	require.ErrorIs(t, err, similarity.ErrNoPoints)

	_, err = similarity.FromPoints([][]float64{{}, {}}, similarity.Euclidean)
	require.ErrorIs(t, err, similarity.ErrRaggedPoints)

	_, err = similarity.FromPoints([][]float64{{1, 2}, {3}}, similarity.Euclidean)
	require.ErrorIs(t, err, similarity.ErrRaggedPoints)

	_, err = similarity.FromPoints([][]float64{{1}, {math.Inf(1)}}, similarity.Manhattan)
	require.ErrorIs(t, err, similarity.ErrNonFinite)
}

func TestSymmetrizeNil(t *testing.T) {
	assert.Nil(t, similarity.Symmetrize(nil))
}
