// Package core: binary-search membership lookup over a canonical complex.
package core

import (
	"slices"
	"sort"
)

// Find locates a cell permutation-equal to c inside cells and returns its
// index, or −1 when absent.
//
// Precondition: cells is in canonical form (see Normalize). The query cell
// is not required to be sorted; Find sorts a copy and never mutates c.
// When duplicates of c exist, any one of their indices may be returned;
// which one is unspecified.
//
// Steps:
//  1. Ascending-sort a copy of c.
//  2. Binary-search cells for the first index not ranking before the query.
//  3. Confirm permutation-equality at that index, else report −1.
//
// Complexity: O(d·log d + d·log n), d = len(c), n = len(cells).
func Find(cells Complex, c Cell) int {
	// 1. Canonical query copy.
	q := slices.Clone(c)
	slices.Sort(q)

	// 2. Lower bound by the shared sorted-cell comparator.
	i := sort.Search(len(cells), func(i int) bool {
		return compareSorted(cells[i], q) >= 0
	})

	// 3. Confirm the hit.
	if i < len(cells) && compareSorted(cells[i], q) == 0 {
		return i
	}

	return -1
}
