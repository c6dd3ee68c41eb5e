package core_test

import (
	"fmt"

	"github.com/katalvlaran/simplicial/core"
)

// ExampleNormalize demonstrates canonicalization of a small mixed complex:
// each cell's vertices are sorted ascending, then the cells themselves are
// ordered shortest-first, lexicographically.
func ExampleNormalize() {
	// 1. Two triangles and an edge, in arbitrary vertex order.
	cells := core.Complex{
		{3, 2, 1},
		{2, 0, 1},
		{1, 0},
	}

	// 2. Canonicalize in place.
	core.Normalize(cells)

	// 3. Print the canonical sequence.
	for _, c := range cells {
		fmt.Println(c)
	}
	// Output:
	// [0 1]
	// [0 1 2]
	// [1 2 3]
}

// ExampleFind demonstrates membership lookup after normalization: the
// query cell may list its vertices in any order.
func ExampleFind() {
	cells := core.Normalize(core.Complex{
		{0, 1, 2},
		{1, 2, 3},
		{2, 3, 4},
	})

	fmt.Println(core.Find(cells, core.Cell{3, 1, 2})) // permuted triangle
	fmt.Println(core.Find(cells, core.Cell{0, 1, 3})) // not a cell
	// Output:
	// 1
	// -1
}
