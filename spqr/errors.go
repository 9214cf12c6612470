package spqr

import "errors"

var (
	// ErrNotBiconnected is returned by Decompose when the input graph is
	// not biconnected. Use DecomposeAll or DecomposeSafe instead.
	ErrNotBiconnected = errors.New("spqr: graph is not biconnected")

	// ErrUnsupportedInput is returned for directed edges (without
	// ForceUndirected) and for self-loops, which have no place in a
	// triconnectivity decomposition.
	ErrUnsupportedInput = errors.New("spqr: unsupported input")

	// ErrBadNode is returned when an operator references a node id that
	// does not exist or has the wrong kind for the operation.
	ErrBadNode = errors.New("spqr: bad node reference")

	// ErrBadPermutation is returned by PermuteParallel when order is not
	// a permutation of the node's skeleton edge indices.
	ErrBadPermutation = errors.New("spqr: order is not a valid permutation")

	// ErrNonPlanarSkeleton is returned by MaterializeEmbedding when a
	// rigid skeleton admits no planar embedding.
	ErrNonPlanarSkeleton = errors.New("spqr: rigid skeleton is not planar")
)
