// 3 Mar 2021
// The character matrix behind an alignment. Like the byte matrix in
// andrew-torda/matrix, rows are slices into one backing array, so a
// matrix is one allocation. Rows of an unaligned matrix are allowed to
// have different lengths and then each one gets its own piece of the
// backing array.

package msa

// Matrix is the character array of an alignment. Mat[i] is row i.
type Matrix struct {
	Mat      [][]byte
	fullData []byte
}

// fixSlices sets the row slices to point into the backing store.
// lens gives the length of each row.
func (m *Matrix) fixSlices(lens []int) {
	tmp := m.fullData
	m.Mat = make([][]byte, len(lens))
	for i, n := range lens {
		m.Mat[i] = tmp[:n:n]
		tmp = tmp[n:]
	}
}

// NewMatrix gives an nrow x ncol matrix filled with zero bytes.
func NewMatrix(nrow, ncol int) Matrix {
	lens := make([]int, nrow)
	for i := range lens {
		lens[i] = ncol
	}
	var m Matrix
	m.fullData = make([]byte, nrow*ncol)
	m.fixSlices(lens)
	return m
}

// MatrixFrom copies rows into a new matrix with its own storage.
// Nothing in the result aliases rows.
func MatrixFrom(rows [][]byte) Matrix {
	lens := make([]int, len(rows))
	n := 0
	for i, r := range rows {
		lens[i] = len(r)
		n += len(r)
	}
	var m Matrix
	m.fullData = make([]byte, n)
	m.fixSlices(lens)
	for i, r := range rows {
		copy(m.Mat[i], r)
	}
	return m
}

// MatrixFromStrings is MatrixFrom for strings. It is mostly for testing.
func MatrixFromStrings(ss []string) Matrix {
	rows := make([][]byte, len(ss))
	for i, s := range ss {
		rows[i] = []byte(s)
	}
	return MatrixFrom(rows)
}

// Size returns the number of rows and the length of the first row.
func (m Matrix) Size() (nrow, ncol int) {
	if nrow = len(m.Mat); nrow == 0 {
		return 0, 0
	}
	return nrow, len(m.Mat[0])
}

// rectangular says if every row has the same length.
func (m Matrix) rectangular() bool {
	_, ncol := m.Size()
	for _, r := range m.Mat {
		if len(r) != ncol {
			return false
		}
	}
	return true
}

// Copy returns a copy with fresh storage.
func (m Matrix) Copy() Matrix { return MatrixFrom(m.Mat) }

// Equal says if two matrices have the same shape and contents.
func (m Matrix) Equal(o Matrix) bool {
	if len(m.Mat) != len(o.Mat) {
		return false
	}
	for i := range m.Mat {
		if string(m.Mat[i]) != string(o.Mat[i]) {
			return false
		}
	}
	return true
}

// take builds a new matrix from the given rows and columns of m.
// A nil cols means all columns.
func (m Matrix) take(rows, cols []int) Matrix {
	if cols == nil {
		sub := make([][]byte, len(rows))
		for i, r := range rows {
			sub[i] = m.Mat[r]
		}
		return MatrixFrom(sub)
	}
	out := NewMatrix(len(rows), len(cols))
	for i, r := range rows {
		src, dst := m.Mat[r], out.Mat[i]
		for j, c := range cols {
			dst[j] = src[c]
		}
	}
	return out
}

// String prints the rows one per line.
func (m Matrix) String() (s string) {
	for _, r := range m.Mat {
		s += string(r) + "\n"
	}
	return s
}
