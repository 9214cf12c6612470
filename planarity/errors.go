package planarity

import "errors"

// ErrUnsupportedInput is returned when the input graph carries directed
// edges and the caller has not opted into a ForceUndirected projection.
var ErrUnsupportedInput = errors.New("planarity: directed input requires ForceUndirected")
