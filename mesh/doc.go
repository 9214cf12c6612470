// Package mesh turns a core.Graph plus a core.RotationSystem into a
// half-edge structure: parallel arrays indexed by half-edge id h = 2*e+k
// (k in {0,1}) giving each half-edge's twin, origin vertex, face-successor,
// and face id, plus the enumerated face cycles themselves.
//
// Built id-array-indexed in the same style as core.Graph and bcc.Result —
// every cross-reference is an integer id, never a pointer.
package mesh
