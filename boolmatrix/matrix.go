package boolmatrix

// Build sets entries (rows[k], cols[k]) = vals[k] for all k. When the same
// coordinate appears more than once, dup combines the old and new value —
// for Boolean element types `First` is sufficient since every value is
// true.
func (m *Matrix[T]) Build(rows, cols []uint64, vals []T, dup BinaryOp[T]) {
	for k := range rows {
		m.insertWithDup(rows[k], cols[k], vals[k], &dup)
	}
}

// Insert upserts a single entry, overwriting any existing value.
func (m *Matrix[T]) Insert(i, j uint64, v T) {
	m.insertWithDup(i, j, v, nil)
}

func (m *Matrix[T]) insertWithDup(i, j uint64, v T, dup *BinaryOp[T]) {
	if i >= m.nrows || j >= m.ncols {
		panic(ErrShapeMismatch)
	}
	row, ok := m.rows[i]
	if !ok {
		row = make(map[uint64]T)
		m.rows[i] = row
	}
	if old, exists := row[j]; exists && dup != nil {
		row[j] = dup.Apply(old, v)
		return
	} else if !exists {
		m.nvals++
	}
	row[j] = v
}

// Get returns the stored value at (i,j) and whether a value is present.
func (m *Matrix[T]) Get(i, j uint64) (T, bool) {
	var zero T
	row, ok := m.rows[i]
	if !ok {
		return zero, false
	}
	v, ok := row[j]
	return v, ok
}

// Clear removes all entries; shape is preserved.
func (m *Matrix[T]) Clear() {
	m.rows = make(map[uint64]map[uint64]T)
	m.nvals = 0
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := New[T](m.nrows, m.ncols)
	for i, row := range m.rows {
		nr := make(map[uint64]T, len(row))
		for j, v := range row {
			nr[j] = v
		}
		out.rows[i] = nr
	}
	out.nvals = m.nvals
	return out
}

// ExtractTuples returns three parallel slices (rows, cols, vals) covering
// every stored entry, in unspecified but internally consistent order.
func (m *Matrix[T]) ExtractTuples() (rows, cols []uint64, vals []T) {
	rows = make([]uint64, 0, m.nvals)
	cols = make([]uint64, 0, m.nvals)
	vals = make([]T, 0, m.nvals)
	for i, row := range m.rows {
		for j, v := range row {
			rows = append(rows, i)
			cols = append(cols, j)
			vals = append(vals, v)
		}
	}
	return rows, cols, vals
}
