package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/cluster"
)

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		merges []cluster.Merge
		want   error
	}{
		{"no items", 0, nil, cluster.ErrInvalidItemCount},
		{"too many merges", 2, []cluster.Merge{{0, 1, 0, 2}, {0, 1, 0, 2}}, cluster.ErrInvalidMerge},
		{"out of range", 3, []cluster.Merge{{0, 3, 0, 2}}, cluster.ErrInvalidMerge},
		{"negative", 3, []cluster.Merge{{-1, 0, 0, 2}}, cluster.ErrInvalidMerge},
		{"self merge", 3, []cluster.Merge{{1, 1, 0, 2}}, cluster.ErrInvalidMerge},
		{"absorbed twice", 4, []cluster.Merge{{0, 1, 0, 2}, {2, 1, 0, 2}}, cluster.ErrInvalidMerge},
		{"retired survivor", 4, []cluster.Merge{{0, 1, 0, 2}, {1, 2, 0, 2}}, cluster.ErrInvalidMerge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, cluster.Validate(tc.n, tc.merges), tc.want)
		})
	}

	require.NoError(t, cluster.Validate(1, nil))
	require.NoError(t, cluster.Validate(3, []cluster.Merge{{2, 0, 0, 2}, {2, 1, 0, 3}}))
}

func TestLabels_Cuts(t *testing.T) {
	// Single linkage on the bridge table: (0,1), (0,3), (0,2), (0,4).
	merges, err := cluster.Compute(5, negDist(distBridge))
	require.NoError(t, err)

	labels, err := cluster.Labels(5, merges, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, labels)

	labels, err = cluster.Labels(5, merges, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 1, 0, 2}, labels)

	labels, err = cluster.Labels(5, merges, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0}, labels)
}

func TestLabels_InvalidK(t *testing.T) {
	merges, err := cluster.Compute(5, negDist(distStar))
	require.NoError(t, err)

	for _, k := range []int{0, 6, -1} {
		_, err = cluster.Labels(5, merges, k)
		require.ErrorIs(t, err, cluster.ErrInvalidClusterCount, "k=%d", k)
	}

	// A stopped run cannot be cut below its remaining cluster count.
	short, err := cluster.Compute(5, negDist(distStar), cluster.WithStop(cluster.Below(-2.5)))
	require.NoError(t, err)
	_, err = cluster.Labels(5, short, 2)
	require.ErrorIs(t, err, cluster.ErrInvalidClusterCount)
	labels, err := cluster.Labels(5, short, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 1, 2}, labels)
}

func TestLabelsAt_Threshold(t *testing.T) {
	merges, err := cluster.Compute(5, negDist(distStar))
	require.NoError(t, err)

	labels, k, err := cluster.LabelsAt(5, merges, -2)
	require.NoError(t, err)
	require.Equal(t, 3, k)
	require.Equal(t, []int{0, 0, 0, 1, 2}, labels)

	_, k, err = cluster.LabelsAt(5, merges, 0)
	require.NoError(t, err)
	require.Equal(t, 5, k)

	_, _, err = cluster.LabelsAt(5, []cluster.Merge{{0, 0, 0, 1}}, 0)
	require.ErrorIs(t, err, cluster.ErrInvalidMerge)
}
