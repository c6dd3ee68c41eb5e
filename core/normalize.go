// Package core: in-place canonicalization of a complex, with an optional
// parallel attribute slice permuted identically.
package core

import (
	"slices"
	"sort"
)

// Normalize canonicalizes cells in place: each cell's vertices are sorted
// ascending, then the cell sequence is stably sorted by CompareCells.
// It returns the same backing storage it was given.
//
// Canonical form is the precondition for Find and incidence.BuildIndex.
// Normalize does not deduplicate; permutation-equal cells end up adjacent.
// Idempotent: a second application leaves the sequence bit-for-bit unchanged.
//
// Mutation contract: callers needing the pre-normalization order must Clone
// first, or use Normalized.
//
// Steps:
//  1. Sort every cell's vertices ascending, in place.
//  2. Stable-sort the cell sequence with the shared sorted-cell comparator
//     (stable so equal cells keep their original relative order).
//
// Complexity: O(d·n·log n), n = cell count, d = max cell length.
func Normalize(cells Complex) Complex {
	// 1. Per-cell vertex sort.
	for _, c := range cells {
		slices.Sort(c)
	}

	// 2. Stable sequence sort; cells are sorted already, so the cheap
	//    comparator applies.
	sort.SliceStable(cells, func(i, j int) bool {
		return compareSorted(cells[i], cells[j]) < 0
	})

	return cells
}

// NormalizeAttr canonicalizes cells exactly as Normalize does and applies
// the identical permutation to attr, a slice parallel to cells (one
// attribute value per cell). Both slices are mutated in place; cells is
// returned for chaining.
//
// attr shorter or longer than cells is not validated; only the permutation
// of min(len) entries is defined.
//
// Complexity: O(d·n·log n). Memory: O(n) for the permutation.
func NormalizeAttr[T any](cells Complex, attr []T) Complex {
	// 1. Per-cell vertex sort, as in Normalize.
	for _, c := range cells {
		slices.Sort(c)
	}

	// 2. Compute the stable sorting permutation instead of sorting directly,
	//    so it can be replayed onto attr.
	perm := make([]int, len(cells))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(i, j int) bool {
		return compareSorted(cells[perm[i]], cells[perm[j]]) < 0
	})

	// 3. Replay the permutation onto both slices.
	sortedCells := make(Complex, len(cells))
	for i, p := range perm {
		sortedCells[i] = cells[p]
	}
	copy(cells, sortedCells)

	sortedAttr := make([]T, 0, len(attr))
	for _, p := range perm {
		if p < len(attr) {
			sortedAttr = append(sortedAttr, attr[p])
		}
	}
	copy(attr, sortedAttr)

	return cells
}

// Normalized is the non-mutating convenience wrapper around Normalize:
// it deep-copies cells and canonicalizes the copy, leaving the input
// untouched. Prefer Normalize for large complexes where the extra copy
// matters and the original order does not.
//
// Complexity: O(d·n·log n). Memory: O(d·n).
func Normalized(cells Complex) Complex {
	return Normalize(Clone(cells))
}
