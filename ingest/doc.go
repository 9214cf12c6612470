// Package ingest parses the dataset documents external collaborators
// hand to the kernel: an attribution block, a node label list, 0-based
// integer edge pairs, and optional per-node geographic coordinates.
//
// This is the only place in the kernel that touches an external format.
// Validation is strict: non-integer endpoints, out-of-range indices,
// self-loops, and mismatched geographic array lengths are all rejected
// with ErrInvalidInput. Edge normalization (dedupe, [min, max] order,
// lexicographic sort) makes graph construction deterministic for a
// given document regardless of its edge order.
package ingest
