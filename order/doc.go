// Package order computes an st-numbering of a biconnected graph and the
// corresponding bipolar (acyclic, single-source single-sink) orientation.
//
// STNumbering builds an open ear decomposition starting from any s-t path,
// then splices each subsequent ear's interior vertices into the current
// numbering between its two (already-numbered) attachment points — the
// classical Lempel-Even-Cederbaum path-addition construction. Every
// interior vertex thereby gets both a lower- and a higher-numbered
// neighbour by construction, exactly the invariant spec'd for an
// st-numbering.
package order
