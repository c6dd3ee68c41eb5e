package incidence_test

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
	"github.com/katalvlaran/simplicial/incidence"
	"github.com/katalvlaran/simplicial/skeleton"
)

// ExampleBuildIndex demonstrates the edge→triangle adjacency query on two
// triangles glued along edge [1,2].
func ExampleBuildIndex() {
	// 1. Two glued triangles.
	cells := core.Complex{{0, 1, 2}, {1, 2, 3}}

	// 2. Extract the canonical edge skeleton to use as the query complex.
	edges, _ := skeleton.Skeleton(cells, 1)

	// 3. For every edge, list the triangles containing it.
	idx := incidence.BuildIndex(edges, cells)
	for i, e := range edges {
		fmt.Println(e, "->", idx[i])
	}
	// Output:
	// [0 1] -> [0]
	// [0 2] -> [0]
	// [1 2] -> [0 1]
	// [1 3] -> [1]
	// [2 3] -> [1]
}

// ExampleDual demonstrates vertex stars: per vertex, the positions of the
// cells containing it.
func ExampleDual() {
	cells := core.Complex{{0, 1, 2}, {1, 2, 3}}

	for v, star := range incidence.Dual(cells) {
		fmt.Println(v, "->", star)
	}
	// Output:
	// 0 -> [0]
	// 1 -> [0 1]
	// 2 -> [0 1]
	// 3 -> [1]
}
