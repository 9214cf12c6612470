package builder

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
)

// Bipartite returns the complete bipartite graph K_{p,q}: p vertices in the
// left part, each joined to all q vertices in the right part.
// Bipartite(3, 3) is the other Kuratowski graph, K3,3.
func Bipartite(p, q int, opts ...Option) (*core.Graph, error) {
	if p < 1 || q < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	left := make([]core.VertexID, p)
	for i := range left {
		left[i] = b.AddVertex(fmt.Sprintf("%sL%d", o.labelPrefix, i))
	}
	right := make([]core.VertexID, q)
	for i := range right {
		right[i] = b.AddVertex(fmt.Sprintf("%sR%d", o.labelPrefix, i))
	}
	for _, u := range left {
		for _, v := range right {
			b.AddEdge(u, v, false)
		}
	}
	return b.Build(), nil
}
