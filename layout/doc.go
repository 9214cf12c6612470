// Package layout renders graphs: straight-line planar drawings,
// orthogonal grid drawings, and a planarization pipeline for inputs that
// are not planar at all.
//
// PlanarStraightLine pins each component's outer face to a regular
// polygon and solves the Tutte barycentric system (via matrix.LU) for
// the interior, after combinatorially fan-triangulating internal faces.
// OrthogonalLayout snaps those coordinates to grid ranks, assigns
// cardinal ports in rotation order, estimates bends with the face-angle
// min-cost flow (flow.MinCostFlow), and routes each edge port-to-port
// with axis-aligned segments. PlanarizationLayout grows a maximal planar
// subgraph in input order, inserts every rejected edge along a shortest
// dual route with one dummy vertex per crossing, draws the result in
// either mode, and reassembles the original edges through their dummy
// chains.
//
// All three are pure functions over frozen inputs; determinism follows
// the kernel-wide smallest-id tie-breaking.
//
// Failures surface as *LayoutError with a Kind tag (flow-infeasible or
// internal); an infeasible bend flow is not a failure, the orthogonal
// drawing falls back to zero counted bends instead. KindHighDegree is
// defined but no pipeline returns it: a vertex of degree above four has
// its extra incidences spread over its ports rather than failing.
package layout
