package similarity_test

import (
	"fmt"

	"github.com/katalvlaran/hclust/cluster"
	"github.com/katalvlaran/hclust/similarity"
)

// ExampleFromPoints clusters four points on a plane by Manhattan distance.
func ExampleFromPoints() {
	points := [][]float64{{0, 0}, {0, 1}, {5, 5}, {5, 7}}
	fn, err := similarity.FromPoints(points, similarity.Manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	merges, err := cluster.Compute(len(points), fn, cluster.WithLinkage(cluster.Complete))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(merges)
	// Output: [(0,1,-1) (2,3,-2) (0,2,-12)]
}
