// Package incidence: vertex stars — the 0-dimensional fast path.
package incidence

import (
	"errors"
	"slices"

	"github.com/katalvlaran/simplicial/core"
)

// Sentinel errors for dense dual construction.
var (
	// ErrNegativeVertexCount is returned when DualDense is given a vertex
	// count below zero.
	ErrNegativeVertexCount = errors.New("incidence: negative vertex count")

	// ErrVertexRange is returned when a cell references a vertex outside
	// 0..vertexCount-1 in DualDense.
	ErrVertexRange = errors.New("incidence: vertex id outside dense range")
)

// Dual computes the star of every vertex of cells: entry s lists, in
// ascending order, the positions of the cells containing the s-th distinct
// vertex. Slots follow ascending distinct-vertex order, i.e. the order of
// skeleton.Skeleton(cells, 0); cells may use arbitrary (sparse) vertex ids.
//
// Equivalent to BuildIndex over the 0-skeleton, but appends each cell
// position directly to its vertices' entries, skipping subset enumeration.
// A degenerate cell repeating a vertex contributes one entry per
// occurrence; this follows the no-validation contract.
//
// Complexity: O(d·n + V·log V), V = distinct vertex count. Memory: O(V + output).
func Dual(cells core.Complex) [][]int {
	// 1. Discover the distinct vertex set.
	slot := make(map[int]int, len(cells))
	verts := make([]int, 0, len(cells))
	for _, c := range cells {
		for _, v := range c {
			if _, ok := slot[v]; !ok {
				slot[v] = 0
				verts = append(verts, v)
			}
		}
	}

	// 2. Ascending slot order, matching the 0-skeleton.
	slices.Sort(verts)
	for s, v := range verts {
		slot[v] = s
	}

	// 3. One pass over the cells fills every star.
	res := make([][]int, len(verts))
	for i, c := range cells {
		for _, v := range c {
			res[slot[v]] = append(res[slot[v]], i)
		}
	}

	return res
}

// DualDense computes vertex stars for a dense complex: the result has
// exactly vertexCount entries, one per vertex id 0..vertexCount-1
// (unused vertices get nil entries).
//
// Fails fast with ErrNegativeVertexCount or ErrVertexRange instead of
// producing out-of-bounds behavior.
//
// Complexity: O(vertexCount + d·n).
func DualDense(cells core.Complex, vertexCount int) ([][]int, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}

	res := make([][]int, vertexCount)
	for i, c := range cells {
		for _, v := range c {
			if v < 0 || v >= vertexCount {
				return nil, ErrVertexRange
			}
			res[v] = append(res[v], i)
		}
	}

	return res, nil
}
