// Package matrix provides the dense linear algebra the layout package
// needs: a row-major Dense matrix and an LU factorization with partial
// pivoting for solving square systems.
//
// This is deliberately a small surface. TopoLoom's graphs are
// combinatorial (nothing in the kernel represents a graph as a matrix),
// so the only numeric system ever solved is the barycentric placement
// system of the straight-line layout, one right-hand side per axis.
//
// Errors:
//
//	ErrBadShape          - a constructor was given non-positive dimensions.
//	ErrOutOfRange        - an (row, col) index is outside the matrix.
//	ErrNonSquare         - a square matrix was required but not given.
//	ErrDimensionMismatch - operand dimensions are incompatible.
//	ErrSingular          - the system has no unique solution.
package matrix
