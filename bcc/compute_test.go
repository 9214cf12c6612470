package bcc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khalidsaidi/topoloom/bcc"
	"github.com/khalidsaidi/topoloom/core"
)

func path(n int) *core.Graph {
	b := core.NewGraphBuilder()
	vs := make([]core.VertexID, n)
	for i := range vs {
		vs[i] = b.AddVertex(nil)
	}
	for i := 0; i < n-1; i++ {
		b.AddEdge(vs[i], vs[i+1], false)
	}
	return b.Build()
}

func triangle() *core.Graph {
	b := core.NewGraphBuilder()
	a, v, w := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(a, v, false)
	b.AddEdge(v, w, false)
	b.AddEdge(w, a, false)
	return b.Build()
}

func squareWithDiagonal() *core.Graph {
	b := core.NewGraphBuilder()
	v0, v1, v2, v3 := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(v0, v1, false)
	b.AddEdge(v1, v2, false)
	b.AddEdge(v2, v3, false)
	b.AddEdge(v3, v0, false)
	b.AddEdge(v0, v2, false)
	return b.Build()
}

// TestPath4 decomposes the path 0-1-2-3: every edge its own block.
func TestPath4(t *testing.T) {
	g := path(4)
	r := bcc.Compute(g)
	assert.Len(t, r.Blocks, 3)
	for _, blk := range r.Blocks {
		assert.Len(t, blk, 1)
	}
	assert.ElementsMatch(t, []core.EdgeID{0, 1, 2}, r.Bridges)
	assert.ElementsMatch(t, []core.VertexID{1, 2}, r.Articulation)
	assert.Len(t, r.Tree.Nodes, 5) // 3 blocks + 2 articulation vertices
}

func TestTriangle_NoArticulationNoBridge(t *testing.T) {
	r := bcc.Compute(triangle())
	assert.Len(t, r.Blocks, 1)
	assert.Len(t, r.Blocks[0], 3)
	assert.Empty(t, r.Bridges)
	assert.Empty(t, r.Articulation)
}

// TestSquareWithDiagonal expects one block holding all 5 edges, no
// articulation point, no bridges.
func TestSquareWithDiagonal(t *testing.T) {
	r := bcc.Compute(squareWithDiagonal())
	assert.Len(t, r.Blocks, 1)
	assert.Len(t, r.Blocks[0], 5)
	assert.Empty(t, r.Bridges)
	assert.Empty(t, r.Articulation)
}

func TestSelfLoopIsItsOwnBlock(t *testing.T) {
	b := core.NewGraphBuilder()
	v := b.AddVertex(nil)
	loop := b.AddEdge(v, v, false)
	g := b.Build()

	r := bcc.Compute(g)
	assert.Len(t, r.Blocks, 1)
	assert.Equal(t, []core.EdgeID{loop}, r.Blocks[0])
	assert.Contains(t, r.Bridges, loop)
}

func TestDisconnectedGraph_MultipleTrees(t *testing.T) {
	b := core.NewGraphBuilder()
	a, v := b.AddVertex(nil), b.AddVertex(nil)
	x, y := b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(a, v, false)
	b.AddEdge(x, y, false)
	g := b.Build()

	r := bcc.Compute(g)
	assert.Len(t, r.Blocks, 2)
	assert.ElementsMatch(t, []core.EdgeID{0, 1}, r.Bridges)
}

func TestEmptyGraph(t *testing.T) {
	g := core.NewGraphBuilder().Build()
	r := bcc.Compute(g)
	assert.Empty(t, r.Blocks)
	assert.Empty(t, r.Articulation)
	assert.Empty(t, r.Bridges)
}
