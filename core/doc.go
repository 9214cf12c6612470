// Package core defines TopoLoom's fundamental graph value types: VertexID,
// EdgeID, Edge, and the immutable Graph snapshot, plus the GraphBuilder that
// produces one.
//
// A Graph is built once, by a single goroutine, via GraphBuilder, and is
// never mutated afterwards. Because it is frozen at construction, a built
// Graph may be shared across goroutines and read concurrently without locks
// — algorithms over it (bcc, planarity, mesh, spqr, order, dual, flow,
// layout) never need to coordinate with a writer.
//
// Ids are dense, zero-based, and assigned in insertion order: the first
// vertex added gets VertexID(0), the first edge EdgeID(0), and so on. Self-loops
// and parallel edges are permitted at this layer; whether a particular
// algorithm accepts them is that algorithm's option, not core's concern.
//
// Errors:
//
//	ErrInvalidVertex - a VertexID outside [0, VertexCount) was referenced.
//	ErrInvalidEdge   - an EdgeID outside [0, EdgeCount) was referenced.
package core
