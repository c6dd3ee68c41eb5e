// Package components: map-backed partitioning for sparse complexes.
package components

import "github.com/katalvlaran/simplicial/core"

// Sparse partitions cells into connected components using a disjoint-set
// (union-find) keyed by raw vertex id in a map, so vertex ids may be
// arbitrary non-negative integers with gaps.
//
// Steps:
//  1. Initialize DSU maps parent[] and rank[] lazily, on first sight of a
//     vertex.
//  2. For each cell, union every vertex to the cell's first vertex.
//  3. Group cells by the root of their first vertex, in first-appearance
//     order, and collect each group as a Complex.
//
// Components keep the input's cells verbatim (no canonicalization); their
// multiset union equals the input. An empty complex yields an empty list;
// vertex-disjoint cells each form their own component. Cells must be
// non-empty tuples per the data-model contract; this is not validated.
//
// Complexity: O(d·n·α(V)) through map lookups, V = distinct vertex count.
// Memory: O(V + n). Prefer Dense when ids are known to be 0..vertexCount-1.
func Sparse(cells core.Complex) []core.Complex {
	// 1. Lazily-populated DSU maps.
	parent := make(map[int]int, len(cells))
	rank := make(map[int]int, len(cells))
	add := func(u int) {
		if _, ok := parent[u]; !ok {
			parent[u] = u
			rank[u] = 0
		}
	}

	// Iterative find with path compression, as in the dense variant.
	find := func(u int) int {
		for parent[u] != u {
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
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	// 2. Chain every vertex of a cell to its first vertex.
	for _, c := range cells {
		add(c[0])
		for _, v := range c[1:] {
			add(v)
			union(c[0], v)
		}
	}

	// 3. Group cells by root, first-appearance order.
	return groupByRoot(cells, func(c core.Cell) int {
		return find(c[0])
	})
}
