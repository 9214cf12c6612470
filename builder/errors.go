package builder

import "errors"

// Sentinel errors for builder constructors. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrTooFewVertices indicates a size parameter smaller than the
	// constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrConstructFailed indicates a randomized constructor exhausted its
	// bounded retry budget without finding a valid realization.
	ErrConstructFailed = errors.New("builder: construction failed")
)
