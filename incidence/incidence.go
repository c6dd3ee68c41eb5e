// Package incidence: the general face-subset incidence index.
package incidence

import (
	"math/bits"

	"github.com/katalvlaran/simplicial/core"
)

// BuildIndex returns a slice parallel to from; entry i lists, in ascending
// order, the positions j such that from[i] is a face (vertex subset) of
// to[j].
//
// Precondition: from is in canonical form (core.Normalize). to may be any
// complex; it is scanned as-is. Neither argument is mutated.
//
// Steps:
//  1. Collect the set of cell lengths present in from — only subsets of
//     those sizes can possibly match, so all others are skipped.
//  2. For each target cell, enumerate its non-empty vertex subsets by
//     bitmask, keeping only masks whose popcount is a wanted length.
//  3. Binary-search each kept subset in from; on a hit, append the target
//     position to that query cell's entry.
//
// Duplicate cells in from receive hits on whichever duplicate core.Find
// lands on. Subset enumeration is exponential in cell length; see the
// package doc for the cost model.
//
// Complexity: O(p + q·2^d·d·log p), p = |from|, q = |to|, d = max cell length.
func BuildIndex(from, to core.Complex) [][]int {
	// Every query cell gets an entry, hit or not.
	res := make([][]int, len(from))

	// 1. Subset sizes worth probing.
	wanted := make(map[int]bool, 4)
	maxLen := 0
	for _, c := range from {
		wanted[len(c)] = true
		if len(c) > maxLen {
			maxLen = len(c)
		}
	}
	if len(from) == 0 {
		return res
	}

	// Scratch subset buffer, reused across masks.
	sub := make(core.Cell, 0, maxLen)

	// 2. Enumerate face subsets of each target cell.
	for j, cell := range to {
		k := len(cell)
		for mask := 1; mask < 1<<uint(k); mask++ {
			if !wanted[bits.OnesCount(uint(mask))] {
				continue
			}
			sub = sub[:0]
			for b := 0; b < k; b++ {
				if mask&(1<<uint(b)) != 0 {
					sub = append(sub, cell[b])
				}
			}

			// 3. Locate the face among the query cells.
			if idx := core.Find(from, sub); idx >= 0 {
				res[idx] = append(res[idx], j)
			}
		}
	}

	return res
}
