package order

import "github.com/khalidsaidi/topoloom/core"

// BipolarOrientation orients every edge of g from its lower- to its
// higher-numbered endpoint under n, producing an acyclic orientation with
// unique source n.S and unique sink n.T.
func BipolarOrientation(g *core.Graph, n *Numbering) []EdgeDirection {
	out := make([]EdgeDirection, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		from, to := e.U, e.V
		if n.Of(from) > n.Of(to) {
			from, to = to, from
		}
		out = append(out, EdgeDirection{Edge: e.ID, From: from, To: to})
	}
	return out
}
