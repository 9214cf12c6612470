package order

import "github.com/khalidsaidi/topoloom/core"

// Numbering is a bijection vertex -> [1..n] with ST[s]=1, ST[t]=n.
type Numbering struct {
	ST []int // indexed by core.VertexID
	S  core.VertexID
	T  core.VertexID
}

// Of returns the st-number of v.
func (n Numbering) Of(v core.VertexID) int { return n.ST[v] }

// EdgeDirection is the oriented direction assigned to an edge by
// BipolarOrientation: From is always the lower-st endpoint, To the higher.
type EdgeDirection struct {
	Edge core.EdgeID
	From core.VertexID
	To   core.VertexID
}
