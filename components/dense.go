// Package components: array-backed partitioning for dense complexes.
package components

import "github.com/katalvlaran/simplicial/core"

// Dense partitions cells into connected components using an array-backed
// disjoint-set (union-find) with path compression and union by rank over
// vertex ids 0..vertexCount-1.
//
// Error Conditions:
//   - ErrNegativeVertexCount : vertexCount < 0.
//   - ErrVertexRange         : some cell references a vertex outside the range.
//
// Steps:
//  1. Validate vertexCount; allocate parent[] and rank[] arrays.
//  2. For each cell, union every vertex to the cell's first vertex.
//  3. Group cells by the root of their first vertex, in first-appearance
//     order, and collect each group as a Complex.
//
// Components keep the input's cells verbatim (no canonicalization); their
// multiset union equals the input. Cells must be non-empty tuples per the
// data-model contract; this is not validated.
//
// Complexity: O(vertexCount + d·n·α(vertexCount)). Memory: O(vertexCount + n).
func Dense(cells core.Complex, vertexCount int) ([]core.Complex, error) {
	// 1. Validate and allocate the DSU arrays.
	if vertexCount < 0 {
		return nil, ErrNegativeVertexCount
	}
	parent := make([]int, vertexCount)
	rank := make([]int, vertexCount)
	for v := range parent {
		parent[v] = v
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		// Walk up until the root (parent[u] == u).
		for parent[u] != u {
			// Path compression: make u point to its grandparent.
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// Union by rank merges two disjoint sets.
	union := func(u, v int) {
		rootU := find(u)
		rootV := find(v)
		if rootU == rootV {
			// Already in the same set; no action needed.
			return
		}
		// Attach smaller-rank tree under larger-rank root.
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			// If ranks are equal, increment the resulting root's rank by 1.
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 2. Chain every vertex of a cell to its first vertex.
	for _, c := range cells {
		first := c[0]
		if first < 0 || first >= vertexCount {
			return nil, ErrVertexRange
		}
		for _, v := range c[1:] {
			if v < 0 || v >= vertexCount {
				return nil, ErrVertexRange
			}
			union(first, v)
		}
	}

	// 3. Group cells by root, first-appearance order.
	return groupByRoot(cells, func(c core.Cell) int {
		return find(c[0])
	}), nil
}

// groupByRoot collects cells into one Complex per distinct root, preserving
// the order in which roots first appear during the scan. Shared by the
// dense and sparse variants.
func groupByRoot(cells core.Complex, root func(core.Cell) int) []core.Complex {
	slot := make(map[int]int, len(cells))
	out := make([]core.Complex, 0)
	for _, c := range cells {
		r := root(c)
		s, ok := slot[r]
		if !ok {
			s = len(out)
			slot[r] = s
			out = append(out, core.Complex{})
		}
		out[s] = append(out[s], c)
	}

	return out
}
