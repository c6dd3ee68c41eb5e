// Package core: permutation-invariant total order over cells.
package core

import "slices"

// CompareCells establishes a total order over cells consistent with
// permutation-invariant equality: it compares ascending-sorted copies of a
// and b, ranking shorter cells before longer ones (so mixed-dimension
// complexes order cleanly), then element-wise in ascending order.
// Neither argument is mutated.
//
// Returns:
//
//	<0 if a ranks before b,
//	 0 if a and b are permutations of each other,
//	>0 if a ranks after b.
//
// Complexity: O(k·log k), k = max(len(a), len(b)). Memory: O(k).
func CompareCells(a, b Cell) int {
	// Length decides first; no need to sort when lengths differ.
	if len(a) != len(b) {
		return len(a) - len(b)
	}

	// Sort copies so the comparison sees each cell as a vertex set.
	as := slices.Clone(a)
	bs := slices.Clone(b)
	slices.Sort(as)
	slices.Sort(bs)

	return compareSorted(as, bs)
}

// compareSorted compares two cells whose vertices are already ascending,
// length first, then element-wise. It is the comparator Normalize and Find
// share once per-cell sorting has been established.
func compareSorted(a, b Cell) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}

	return 0
}
