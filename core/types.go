// This file declares the Cell and Complex types together with the trivial
// whole-complex helpers (dimension, dense vertex count, deep copy) that the
// query packages treat as given.
package core

// Cell is an ordered tuple of vertex indices. Its dimension is len(c)−1:
// a 2-cell [a,b] is an edge, a 3-cell [a,b,c] a triangle, and so on.
// Vertex order inside a cell carries no meaning for the unoriented
// operations in this library; equality is permutation-invariant.
type Cell []int

// Complex is a sequence of cells, possibly of mixed dimension.
// The sequence order is significant only before canonicalization
// (it determines the stable canonical order afterwards).
type Complex []Cell

// Dim reports the dimension of the complex: the maximum cell length
// minus one, or −1 for an empty complex.
//
// Complexity: O(n).
func Dim(cells Complex) int {
	d := 0
	for _, c := range cells {
		if len(c) > d {
			d = len(c)
		}
	}

	return d - 1
}

// VertexCount reports the number of vertices of a dense complex:
// the maximum vertex index plus one, or 0 for an empty complex.
// Sparse complexes (non-contiguous ids) get an upper bound, not a count.
//
// Complexity: O(d·n).
func VertexCount(cells Complex) int {
	max := -1
	for _, c := range cells {
		for _, v := range c {
			if v > max {
				max = v
			}
		}
	}

	return max + 1
}

// Clone returns a deep copy of cells: fresh outer slice, fresh cell slices.
// Use it before Normalize when the original order must survive.
//
// Complexity: O(d·n).
func Clone(cells Complex) Complex {
	out := make(Complex, len(cells))
	for i, c := range cells {
		cc := make(Cell, len(c))
		copy(cc, c)
		out[i] = cc
	}

	return out
}
