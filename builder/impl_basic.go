package builder

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
)

func labelVertices(b *core.GraphBuilder, n int, prefix string) []core.VertexID {
	vs := make([]core.VertexID, n)
	for i := 0; i < n; i++ {
		vs[i] = b.AddVertex(fmt.Sprintf("%s%d", prefix, i))
	}
	return vs
}

// Cycle returns the n-vertex cycle graph C_n: vertices 0..n-1 each joined to
// their successor mod n.
func Cycle(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	vs := labelVertices(b, n, o.labelPrefix)
	for i := 0; i < n; i++ {
		b.AddEdge(vs[i], vs[(i+1)%n], false)
	}
	return b.Build(), nil
}

// Path returns the n-vertex path graph P_n: vertices 0..n-1 joined in a
// simple chain.
func Path(n int, opts ...Option) (*core.Graph, error) {
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	vs := labelVertices(b, n, o.labelPrefix)
	for i := 0; i < n-1; i++ {
		b.AddEdge(vs[i], vs[i+1], false)
	}
	return b.Build(), nil
}

// Complete returns the complete graph K_n. Complete(5) is the smallest
// complete non-planar graph, the K5 of Kuratowski's theorem.
func Complete(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	vs := labelVertices(b, n, o.labelPrefix)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddEdge(vs[i], vs[j], false)
		}
	}
	return b.Build(), nil
}

// Star returns the star graph on n leaves: one hub vertex (index 0) joined
// to n further leaf vertices.
func Star(n int, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	hub := b.AddVertex(fmt.Sprintf("%shub", o.labelPrefix))
	for i := 0; i < n; i++ {
		leaf := b.AddVertex(fmt.Sprintf("%s%d", o.labelPrefix, i))
		b.AddEdge(hub, leaf, false)
	}
	return b.Build(), nil
}

// Wheel returns the wheel graph W_n: a cycle C_n (the rim) plus one hub
// vertex joined to every rim vertex.
func Wheel(n int, opts ...Option) (*core.Graph, error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	rim := labelVertices(b, n, o.labelPrefix)
	for i := 0; i < n; i++ {
		b.AddEdge(rim[i], rim[(i+1)%n], false)
	}
	hub := b.AddVertex(fmt.Sprintf("%shub", o.labelPrefix))
	for i := 0; i < n; i++ {
		b.AddEdge(hub, rim[i], false)
	}
	return b.Build(), nil
}
