// Package spqr decomposes a biconnected graph into its SPQR tree: S
// nodes for cycles, P nodes for parallel bundles, R nodes for rigid
// (further-indivisible) skeletons, and Q nodes for single real edges.
//
// Each node carries a skeleton: a small graph whose edges are either
// real (an edge of the decomposed graph) or virtual (a stand-in for the
// rest of the graph hanging off an adjacent tree node). Virtual edges are
// matched one-to-one across adjacent nodes by pair id; replacing every
// matched pair by gluing its two skeletons reproduces the original graph.
//
// A split pair here is a non-adjacent vertex pair whose removal
// disconnects the component. Pairs joined by an edge never split: their
// multiplicity is handled by P nodes instead, so a skeleton whose only
// 2-separators are adjacent pairs counts as rigid. Decompose splits off
// whole components at once, keeping skeletons maximal.
//
// Decompose requires a biconnected graph; DecomposeAll decomposes every
// block of an arbitrary graph, and DecomposeSafe just the largest block,
// with a note describing what was skipped.
//
// The embedding operators work on the finished tree: FlipSkeleton
// mirrors a rigid node, PermuteParallel reorders a bundle, and
// MaterializeEmbedding expands the tree into a rotation system over the
// original graph. Validate checks every structural invariant and reports
// violations individually.
//
// Errors:
//
//	ErrNotBiconnected    - Decompose needs a biconnected input.
//	ErrUnsupportedInput  - directed edges (without WithForceUndirected)
//	                       or self-loops.
//	ErrBadNode           - operator applied to a missing or wrong-kind node.
//	ErrBadPermutation    - PermuteParallel order is not a permutation.
//	ErrNonPlanarSkeleton - a rigid skeleton admits no planar embedding.
package spqr
