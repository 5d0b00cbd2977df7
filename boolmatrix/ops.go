package boolmatrix

// Apply computes dst[i,j] = unary.Apply(src[i,j]) for every stored position
// of src, restricted to mask if non-nil (a position is only written when
// the mask has an entry there). If accum is non-nil, the existing dst[i,j]
// (or the zero value, if absent) is combined with accum.Apply instead of
// being overwritten.
func Apply[T any](dst *Matrix[T], accum *BinaryOp[T], unary UnaryOp[T], src *Matrix[T], mask *Matrix[bool]) {
	if dst.nrows != src.nrows || dst.ncols != src.ncols {
		panic(ErrShapeMismatch)
	}
	if mask != nil && (mask.nrows != dst.nrows || mask.ncols != dst.ncols) {
		panic(ErrShapeMismatch)
	}
	for i, row := range src.rows {
		for j, v := range row {
			if mask != nil {
				if _, ok := mask.Get(i, j); !ok {
					continue
				}
			}
			out := unary.Apply(v)
			if accum != nil {
				if old, ok := dst.Get(i, j); ok {
					out = accum.Apply(old, out)
				}
			}
			dst.Insert(i, j, out)
		}
	}
}

// Mxm computes dst = a·b under semiring, optionally accumulating into the
// existing contents of dst via accum rather than overwriting. dst must
// already have shape (a.NRows() x b.NCols()); callers typically obtain it
// via New before calling Mxm into it, or multiply into a cleared scratch
// matrix and Apply that into the destination (see cfpq.MatrixProduct).
func Mxm[T any](dst *Matrix[T], accum *BinaryOp[T], semiring Semiring[T], a, b *Matrix[T]) {
	if a.ncols != b.nrows {
		panic(ErrShapeMismatch)
	}
	if dst.nrows != a.nrows || dst.ncols != b.ncols {
		panic(ErrShapeMismatch)
	}
	if dst.nvals > 0 {
		product := New[T](dst.nrows, dst.ncols)
		Mxm(product, nil, semiring, a, b)
		if accum == nil {
			dst.Clear()
		}
		Apply(dst, accum, UnaryOp[T]{Name: "identity", Apply: func(v T) T { return v }}, product, nil)
		return
	}

	for i, arow := range a.rows {
		for k, av := range arow {
			brow, ok := b.rows[k]
			if !ok {
				continue
			}
			for j, bv := range brow {
				prod := semiring.Mul.Apply(av, bv)
				var out T
				if old, ok := dst.Get(i, j); ok {
					out = semiring.Add.Apply(old, prod)
				} else {
					out = prod
				}
				dst.Insert(i, j, out)
			}
		}
	}
}

// Kronecker computes dst = a ⊗ b under semiring: dst has shape
// (a.NRows()*b.NRows()) x (a.NCols()*b.NCols()), with entry
// a[i,j] ⊛ b[k,l] (semiring.Mul) stored at (i*b.NRows()+k, j*b.NCols()+l)
// for every pair of stored entries.
func Kronecker[T any](dst *Matrix[T], accum *BinaryOp[T], semiring Semiring[T], a, b *Matrix[T]) {
	wantRows := a.nrows * b.nrows
	wantCols := a.ncols * b.ncols
	if dst.nrows != wantRows || dst.ncols != wantCols {
		panic(ErrShapeMismatch)
	}

	for i, arow := range a.rows {
		for j, av := range arow {
			for k, brow := range b.rows {
				for l, bv := range brow {
					out := semiring.Mul.Apply(av, bv)
					ri := i*b.nrows + k
					rj := j*b.ncols + l
					if accum != nil {
						if old, ok := dst.Get(ri, rj); ok {
							out = accum.Apply(old, out)
						}
					}
					dst.Insert(ri, rj, out)
				}
			}
		}
	}
}

// KroneckerNew allocates and returns a ⊗ b, the convenience form used by
// the automaton and labelgraph packages (which never accumulate Kronecker
// into a pre-existing matrix).
func KroneckerNew[T any](semiring Semiring[T], a, b *Matrix[T]) *Matrix[T] {
	dst := New[T](a.nrows*b.nrows, a.ncols*b.ncols)
	Kronecker(dst, nil, semiring, a, b)
	return dst
}

// MxmNew allocates and returns a·b under semiring.
func MxmNew[T any](semiring Semiring[T], a, b *Matrix[T]) *Matrix[T] {
	dst := New[T](a.nrows, b.ncols)
	Mxm(dst, nil, semiring, a, b)
	return dst
}
