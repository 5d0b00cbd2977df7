package boolmatrix

// BinaryOp is a named binary operator over T, e.g. logical-or or integer
// addition. Name exists purely for Debug/String output and grep-ability
// in error messages.
type BinaryOp[T any] struct {
	Name  string
	Apply func(a, b T) T
}

// UnaryOp is a named unary operator over T, e.g. identity or negation.
type UnaryOp[T any] struct {
	Name  string
	Apply func(a T) T
}

// Semiring couples an additive and a multiplicative BinaryOp for use in
// Mxm and Kronecker. Zero is the additive identity; Mxm and Kronecker skip
// multiplying against positions that are absent rather than materialising
// Zero, so Zero only matters for documentation/validation, never storage.
type Semiring[T any] struct {
	Name string
	Add  BinaryOp[T]
	Mul  BinaryOp[T]
	Zero T
}

// Monoid is a BinaryOp with an identity element, used where an operation
// needs to fold an empty sequence to a sensible default.
type Monoid[T any] struct {
	Op       BinaryOp[T]
	Identity T
}

// Matrix is a sparse r×c matrix over element type T. The zero value is not
// usable; construct with New.
type Matrix[T any] struct {
	nrows, ncols uint64
	rows         map[uint64]map[uint64]T
	nvals        uint64
}

// New returns an empty r×c matrix. Panics with ErrInvalidShape if r or c
// is zero — a zero-sized matrix is never a legitimate operand in this
// module (graphs and automata always have at least one vertex/state).
func New[T any](r, c uint64) *Matrix[T] {
	if r == 0 || c == 0 {
		panic(ErrInvalidShape)
	}
	return &Matrix[T]{
		nrows: r,
		ncols: c,
		rows:  make(map[uint64]map[uint64]T),
	}
}

// NRows returns the number of rows.
func (m *Matrix[T]) NRows() uint64 { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix[T]) NCols() uint64 { return m.ncols }

// NVals returns the number of explicitly stored entries.
func (m *Matrix[T]) NVals() uint64 { return m.nvals }
