// Package bcc implements the low-link depth-first-search suite:
// biconnected components ("blocks"), articulation points, bridges, and
// the bipartite BC-tree linking them.
//
// Compute runs one DFS over the undirected projection of a core.Graph,
// tracking discovery time and low-link value per vertex, exactly the
// textbook algorithm: a block is emitted whenever low(child) >= disc(v)
// for a DFS tree edge (v, child); an edge (v, child) is additionally a
// bridge when low(child) > disc(v); v is an articulation point if it has
// more than one DFS-tree child at the root, or any non-root child with
// low(child) >= disc(v).
//
// Determinism: children are visited in core.Graph adjacency (insertion)
// order; blocks are emitted in DFS-completion order; within each block,
// edges are listed in ascending edge-id order, which is insertion order.
//
// Complexity: O(V+E) time, O(V+E) memory. The walk is iterative
// (explicit stack), not recursive, so it is not limited by goroutine
// stack depth on large inputs.
//
// Errors: Compute never errors; a graph with zero vertices yields an
// empty Result.
package bcc
