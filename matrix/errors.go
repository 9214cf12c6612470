package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (r <= 0
	// or c <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the
	// input was not.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (e.g. a right-hand side of the wrong length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when LU factorization meets a zero pivot:
	// the system has no unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)
