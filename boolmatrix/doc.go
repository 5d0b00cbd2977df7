// Package boolmatrix implements the sparse matrix algebra the rest of this
// module is built on: build/clone/clear/get/insert/extract, elementwise
// apply with an optional accumulator, matrix-matrix multiply over a
// semiring, and Kronecker product.
//
// What & Why:
//
//	Every matrix-based layer (labelgraph, automaton, rfa, rpq, cfpq) reduces
//	to one of these four kernels. The element type is a Go type parameter
//	rather than hard-coded bool so the multiplication contract itself is
//	testable against a non-Boolean semiring (see the seeded uint32
//	(plus,times) case in matrix_test.go); every other package in this
//	module only ever instantiates Matrix[bool] under the (∨,∧) semiring.
//
// Sparsity convention:
//
//	A Matrix stores only entries that have been explicitly set. Get on an
//	unset position reports absence (ok=false), never a zero value — this
//	is what lets BooleanMatrix (Matrix[bool] storing only true) satisfy the
//	"absence = false" invariant for free: nothing is ever stored as false.
//
// Complexity:
//
//	Insert, Get, Clear are O(1) amortised. Nvals/NRows/NCols are O(1).
//	Clone is O(nvals). Apply is O(nvals(src)). Mxm is O(nvals(a) * avg row
//	length of b). Kronecker is O(nvals(a) * nvals(b)).
package boolmatrix

import "errors"

// Sentinel errors for boolmatrix operations.
var (
	// ErrShapeMismatch indicates an operator was called with operands of
	// incompatible shape. This is a fatal programmer error, not a
	// recoverable user error: callers that hit it have miswired the
	// algebra layer.
	ErrShapeMismatch = errors.New("boolmatrix: shape mismatch")

	// ErrInvalidShape indicates New was called with a non-positive dimension.
	ErrInvalidShape = errors.New("boolmatrix: rows and cols must be > 0")
)
