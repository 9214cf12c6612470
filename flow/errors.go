package flow

import "errors"

var (
	// ErrNegativeCapacity is returned when an arc's upper bound is below
	// its lower bound, or either is negative.
	ErrNegativeCapacity = errors.New("flow: invalid capacity bounds")
	// ErrOverflow is returned when an accumulated flow or cost value
	// would overflow int64.
	ErrOverflow = errors.New("flow: integer overflow")
	// ErrBadNode is returned when an arc or demand references a node
	// outside [0, nodeCount).
	ErrBadNode = errors.New("flow: node index out of range")
	// ErrBadDemands is returned when a Problem's demand vector does not
	// have exactly NodeCount entries.
	ErrBadDemands = errors.New("flow: malformed demand vector")
)
