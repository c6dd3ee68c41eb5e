// Package components partitions a simplicial complex into connected
// components: maximal groups of cells chained together by shared vertices.
//
// What:
//
//   - Dense: union-find over contiguous vertex ids 0..vertexCount-1,
//     array-backed — the fast path when the caller knows the vertex count.
//   - Sparse: union-find keyed by raw vertex id in a map — works with
//     arbitrary, gappy vertex ids at extra lookup cost.
//   - Compute: explicit dispatch between the two via Options.Method,
//     mirroring the caller-supplied capability hint (never inferred).
//
// Why:
//
//   - Mesh segmentation: split a soup of triangles into connected shells.
//   - Topology counting: number of islands in a complex.
//
// Complexity:
//
//   - Dense:  O(vertexCount + d·n·α), α = inverse Ackermann (near-constant).
//   - Sparse: O(d·n·α) unions/finds through map lookups (larger constants).
//
// Options:
//
//   - Options.Method: MethodDense or MethodSparse (default MethodSparse).
//   - Options.VertexCount: dense vertex range; ignored by MethodSparse.
//
// Errors:
//
//   - ErrNegativeVertexCount: dense variant given a vertex count below zero.
//   - ErrVertexRange: dense variant met a vertex outside 0..vertexCount-1.
//   - ErrUnknownMethod: Compute given a method string it does not know.
//
// Returned components are not individually canonicalized; their cells keep
// the input's vertex order, and the multiset union of all components equals
// the input. An empty complex yields an empty component list; cells sharing
// no vertices each form their own component.
package components
