package order

import "errors"

// ErrNotBiconnected is returned by STNumbering when the input graph is not
// biconnected.
var ErrNotBiconnected = errors.New("order: graph is not biconnected")

// ErrNoPath is returned when s and t are not connected by any path at all
// (a stronger failure than simply not biconnected).
var ErrNoPath = errors.New("order: no path between s and t")
