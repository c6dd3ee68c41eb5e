// Package components defines configuration options and sentinel errors for
// connected-component partitioning. It supports selecting between the dense
// (array-backed) and sparse (map-backed) union-find via Options.
package components

import (
	"errors"

	"github.com/katalvlaran/simplicial/core"
)

// Sentinel errors for component partitioning.
var (
	// ErrNegativeVertexCount is returned when the dense variant is given a
	// vertex count below zero.
	ErrNegativeVertexCount = errors.New("components: negative vertex count")

	// ErrVertexRange is returned when a cell of a dense complex references
	// a vertex outside 0..vertexCount-1.
	ErrVertexRange = errors.New("components: vertex id outside dense range")

	// ErrUnknownMethod is returned when Compute is given a Method string
	// that is neither MethodDense nor MethodSparse.
	ErrUnknownMethod = errors.New("components: unknown method")
)

// MethodDense selects the array-backed union-find over contiguous vertex
// ids 0..VertexCount-1.
const MethodDense = "dense"

// MethodSparse selects the map-backed union-find over arbitrary vertex ids.
const MethodSparse = "sparse"

// Options configures which union-find backing Compute runs, and for the
// dense method, the vertex range to allocate.
//
// Fields:
//
//	Method      string — one of MethodDense or MethodSparse.
//	VertexCount int    — dense vertex range; ignored when Method == MethodSparse.
//
// See: components.Dense, components.Sparse.
type Options struct {
	// Method to use: MethodDense or MethodSparse.
	Method string

	// VertexCount is the dense vertex range. Unused by MethodSparse.
	VertexCount int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the partitioning Method.
// Allowed values: MethodDense, MethodSparse.
func WithMethod(m string) Option {
	return func(opts *Options) {
		opts.Method = m
	}
}

// WithVertexCount returns an Option that sets the dense vertex range and
// selects MethodDense; passing it is the explicit capability hint that the
// complex uses contiguous ids 0..n-1.
func WithVertexCount(n int) Option {
	return func(opts *Options) {
		opts.Method = MethodDense
		opts.VertexCount = n
	}
}

// DefaultOptions returns Options initialized for the sparse method:
//
//	– Method      = MethodSparse (no assumption about vertex density)
//	– VertexCount = 0 (ignored by MethodSparse).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Method:      MethodSparse,
		VertexCount: 0,
	}
}

// Compute selects and runs the partitioning method based on the applied
// Options.
//
//	– Method == MethodSparse: calls Sparse(cells).
//	– Method == MethodDense:  calls Dense(cells, VertexCount).
//	– Otherwise:              returns ErrUnknownMethod.
//
// Note: this is optional scaffolding—Dense and Sparse can still be called
// directly.
func Compute(cells core.Complex, opts ...Option) ([]core.Complex, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Dispatch by method name
	switch o.Method {
	case MethodSparse:
		return Sparse(cells), nil
	case MethodDense:
		return Dense(cells, o.VertexCount)
	default:
		// Unknown method name
		return nil, ErrUnknownMethod
	}
}
