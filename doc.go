// Package topoloom is a graph-topology kernel: planarity testing with
// embeddings and Kuratowski witnesses, half-edge meshes, biconnected and
// SPQR decompositions, st-numberings, dual-graph routing, min-cost flow,
// and planar drawing.
//
// Everything is organized under focused subpackages:
//
//	core/       — immutable labeled multigraph, GraphBuilder, rotation systems
//	builder/    — deterministic topology generators (cycles, grids, solids, …)
//	bcc/        — biconnected components, articulation points, bridges, BC-tree
//	planarity/  — planarity test: rotation-system embedding or K5/K3,3 witness
//	mesh/       — rotation system → half-edge structure with face enumeration
//	spqr/       — S/P/R/Q decomposition with skeleton operators and validation
//	order/      — st-numbering and bipolar orientation
//	dual/       — dual graph and shortest-face-path edge routing
//	flow/       — max-flow (Dinic, Edmonds-Karp, Ford-Fulkerson) and min-cost flow
//	layout/     — straight-line, orthogonal, and planarization drawings
//	matrix/     — the dense LU solver behind the straight-line layout
//	ingest/     — dataset document parsing and validation
//	converters/ — adapters to external graph libraries
//
// Every operation is a pure function over frozen inputs: a Graph is
// built once and never mutated, all cross-references are integer ids,
// and every tie is broken toward the smallest id, so identical inputs
// always produce identical outputs.
package topoloom
