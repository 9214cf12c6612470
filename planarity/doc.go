// Package planarity tests whether a core.Graph can be drawn without edge
// crossings and, on success, returns a combinatorial embedding as a
// core.RotationSystem; on failure it returns a Kuratowski-style witness (a
// subgraph tagged K5 or K3,3).
//
// Test implements the Demoucron-Malgrange-Pertuiset incremental method,
// block by block: each biconnected block starts from one of its cycles,
// and every remaining bridge (a chord, or a component of unembedded
// vertices plus its attaching edges) is inserted one path at a time into
// a face whose boundary carries all of the bridge's attachments. Each
// round embeds a bridge with the fewest admissible faces; a bridge with
// none proves the block nonplanar. The per-block rotations are then
// grouped contiguously at cut vertices into a rotation system for the
// whole graph.
//
// On failure the failing block is shrunk to an edge-minimal nonplanar
// subgraph — exactly a K5 or K3,3 subdivision — which becomes the
// witness.
//
// This is polynomial rather than strictly linear in the size of the input
// — faces are recomputed from the rotation system after every insertion,
// rather than maintained incrementally with the PQ-tree/Boyer-Myrvold
// machinery a true O(n+m) algorithm requires. That tradeoff is intentional:
// it keeps the embedding logic easy to state and to test.
package planarity
