package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/core"
)

func TestGraphBuilder_Triangle(t *testing.T) {
	b := core.NewGraphBuilder()
	a := b.AddVertex("A")
	v := b.AddVertex("B")
	w := b.AddVertex("C")
	e0 := b.AddEdge(a, v, false)
	e1 := b.AddEdge(v, w, false)
	e2 := b.AddEdge(w, a, false)

	g := b.Build()
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, "A", g.Label(a))
	assert.Equal(t, []core.EdgeID{e0, e2}, g.Adjacency(a))
	assert.Equal(t, []core.EdgeID{e0, e1}, g.Adjacency(v))
	assert.Equal(t, []core.EdgeID{e1, e2}, g.Adjacency(w))
	assert.False(t, g.HasDirectedEdges())
	assert.False(t, g.HasSelfLoops())
	assert.False(t, g.HasParallelEdges())
}

func TestGraphBuilder_SelfLoopAndParallel(t *testing.T) {
	b := core.NewGraphBuilder()
	a := b.AddVertex(nil)
	v := b.AddVertex(nil)
	loop := b.AddEdge(a, a, false)
	b.AddEdge(a, v, false)
	b.AddEdge(a, v, false)

	g := b.Build()
	assert.True(t, g.HasSelfLoops())
	assert.True(t, g.HasParallelEdges())
	// A self-loop contributes its edge id once to its vertex's adjacency.
	assert.Contains(t, g.Adjacency(a), loop)
	assert.Equal(t, 1, countOccurrences(g.Adjacency(a), loop))
}

func TestGraphBuilder_BuildIsSnapshot(t *testing.T) {
	b := core.NewGraphBuilder()
	a := b.AddVertex(nil)
	v := b.AddVertex(nil)
	b.AddEdge(a, v, false)

	g1 := b.Build()
	b.AddEdge(a, v, false)
	g2 := b.Build()

	assert.Equal(t, 1, g1.EdgeCount())
	assert.Equal(t, 2, g2.EdgeCount())
}

func TestEdge_OtherAndIsLoop(t *testing.T) {
	e := core.Edge{ID: 0, U: 1, V: 2}
	assert.Equal(t, core.VertexID(2), e.Other(1))
	assert.Equal(t, core.VertexID(1), e.Other(2))
	assert.False(t, e.IsLoop())

	loop := core.Edge{ID: 1, U: 3, V: 3}
	assert.True(t, loop.IsLoop())
}

func TestRotationSystem_Clone(t *testing.T) {
	r := core.RotationSystem{{0, 1}, {2}}
	c := r.Clone()
	c[0][0] = 99
	assert.Equal(t, core.EdgeID(0), r[0][0])
}

func countOccurrences(s []core.EdgeID, id core.EdgeID) int {
	n := 0
	for _, x := range s {
		if x == id {
			n++
		}
	}
	return n
}
