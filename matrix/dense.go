package matrix

import "fmt"

// Dense is a concrete row-major matrix: r*c float64 values in one flat
// backing slice for cache friendliness.
type Dense struct {
	r, c int
	data []float64 // len == r*c, row-major
}

// NewDense creates an r x c Dense initialized to zeros. Returns
// ErrBadShape unless both dimensions are strictly positive.
//
// Complexity: O(r*c) for the zero fill.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat offset for (row, col), validating both
// indices. It never panics.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfRange, row, col, m.r, m.c)
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}
	return m.data[off], nil
}

// Set writes v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[off] = v
	return nil
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}
