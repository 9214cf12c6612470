package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/khalidsaidi/topoloom/core"
)

// ErrUnsupportedGraph is returned when a graph cannot be represented in
// the target library's model (gonum's simple graphs reject self-loops).
var ErrUnsupportedGraph = errors.New("converters: graph not representable")

// ToGonum converts a core.Graph into a gonum simple.UndirectedGraph.
// Vertex ids carry over as gonum node ids. Parallel edges collapse into
// one (gonum's simple graphs hold at most one edge per pair); self-loops
// are rejected with ErrUnsupportedGraph. Directedness is dropped; the
// conversion exposes the same undirected projection the kernel's
// algorithms consume.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g.HasSelfLoops() {
		return nil, fmt.Errorf("%w: self-loops", ErrUnsupportedGraph)
	}
	ug := simple.NewUndirectedGraph()
	for _, v := range g.Vertices() {
		ug.AddNode(simple.Node(int64(v)))
	}
	for _, e := range g.Edges() {
		f, t := simple.Node(int64(e.U)), simple.Node(int64(e.V))
		if ug.HasEdgeBetween(int64(e.U), int64(e.V)) {
			continue
		}
		ug.SetEdge(simple.Edge{F: f, T: t})
	}
	return ug, nil
}
