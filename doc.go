// Package simplicial is your in-memory toolkit for building, canonicalizing,
// and querying abstract simplicial complexes — finite collections of cells
// (vertex tuples) generalizing graphs to triangles, tetrahedra and beyond.
//
// 🚀 What is simplicial?
//
//	A modern, dependency-light library that brings together:
//		• Core primitives: cells, complexes, permutation-invariant ordering
//		• Canonicalization: in-place normalization + binary-search lookup
//		• Incidence: generic face-subset indexes and fast vertex stars (duals)
//		• Skeletons: unique n-dimensional faces of any complex
//		• Boundaries: mod-2 boundary operator with odd-occurrence filtering
//		• Components: dense (array) and sparse (map) connected-component finding
//
// ✨ Why choose simplicial?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – one total order drives sorting, search and dedup alike
//   - Pure Go – no cgo, no hidden deps
//   - Honest contracts – mutation and preconditions spelled out per function
//
// Under the hood, everything is organized under four subpackages:
//
//	core/       — Cell & Complex types, ordering, normalization, lookup
//	incidence/  — face-subset incidence indexes and vertex stars
//	skeleton/   — sub-cell enumeration, skeletons, mod-2 boundaries
//	components/ — connected-component partitioning (dense & sparse)
//
// Quick ASCII example:
//
//	    0───1
//	     ╲ ╱│
//	      2─3
//
//	two triangles [0,1,2] and [1,2,3] glued along edge [1,2]; their mod-2
//	boundary is the four outer edges — the shared edge [1,2] cancels.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/simplicial
package simplicial
