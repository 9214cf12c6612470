package matrix

import (
	"fmt"
	"math"
)

// LUFactor holds an LU factorization with partial pivoting: PA = LU,
// stored compactly with L's sub-diagonal entries and U sharing one
// matrix (L's unit diagonal is implicit).
type LUFactor struct {
	lu   *Dense
	perm []int // row permutation: solve reads b[perm[i]]
}

// LU factors a square matrix with Doolittle elimination and partial
// pivoting. Returns ErrNonSquare for rectangular input and ErrSingular
// when no usable pivot remains in a column.
//
// Complexity: O(n^3) time, O(n^2) memory.
func LU(m *Dense) (*LUFactor, error) {
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.Rows(), m.Cols())
	}
	n := m.Rows()
	lu := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for col := 0; col < n; col++ {
		// Pick the largest-magnitude pivot at or below the diagonal.
		pivot := col
		best := math.Abs(lu.data[col*n+col])
		for row := col + 1; row < n; row++ {
			if v := math.Abs(lu.data[row*n+col]); v > best {
				pivot, best = row, v
			}
		}
		if best == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrSingular, col)
		}
		if pivot != col {
			for j := 0; j < n; j++ {
				lu.data[col*n+j], lu.data[pivot*n+j] = lu.data[pivot*n+j], lu.data[col*n+j]
			}
			perm[col], perm[pivot] = perm[pivot], perm[col]
		}
		// Eliminate below the pivot, storing multipliers in place.
		inv := 1 / lu.data[col*n+col]
		for row := col + 1; row < n; row++ {
			f := lu.data[row*n+col] * inv
			lu.data[row*n+col] = f
			for j := col + 1; j < n; j++ {
				lu.data[row*n+j] -= f * lu.data[col*n+j]
			}
		}
	}
	return &LUFactor{lu: lu, perm: perm}, nil
}

// Solve returns x with PAx = Pb (i.e. Ax = b) by forward and backward
// substitution. Returns ErrDimensionMismatch when len(b) differs from the
// factored dimension.
//
// Complexity: O(n^2) per right-hand side.
func (f *LUFactor) Solve(b []float64) ([]float64, error) {
	n := f.lu.Rows()
	if len(b) != n {
		return nil, fmt.Errorf("%w: rhs length %d, system size %d", ErrDimensionMismatch, len(b), n)
	}
	x := make([]float64, n)
	// Forward: Ly = Pb, L has a unit diagonal.
	for i := 0; i < n; i++ {
		sum := b[f.perm[i]]
		for j := 0; j < i; j++ {
			sum -= f.lu.data[i*n+j] * x[j]
		}
		x[i] = sum
	}
	// Backward: Ux = y.
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= f.lu.data[i*n+j] * x[j]
		}
		x[i] = sum / f.lu.data[i*n+i]
	}
	return x, nil
}
