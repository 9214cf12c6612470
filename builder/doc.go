// Package builder provides deterministic topology generators over
// core.GraphBuilder: Cycle, Path, Complete, Bipartite, Star, Wheel, Grid,
// three Platonic solids, and two randomized generators (RandomSparse,
// RandomRegular).
//
// These are the canonical fixtures the rest of TopoLoom (and its tests)
// are built against: Complete(5) and Bipartite(3, 3) are the two
// Kuratowski graphs, Cycle(3) the smallest planar cycle, Path(4) the
// smallest chain with two articulation points.
//
// Every generator is a pure function from its parameters (and, for the
// randomized ones, an explicit *rand.Rand) to a *core.Graph: the same
// parameters and the same seeded RNG always produce the same graph.
//
// Errors:
//
//	ErrTooFewVertices    - a size parameter is below the constructor's minimum.
//	ErrInvalidProbability - RandomSparse's p is outside [0,1].
//	ErrConstructFailed   - RandomRegular exhausted its retry budget.
package builder
