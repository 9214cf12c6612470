package planarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/builder"
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/planarity"
)

func TestTree_Planar(t *testing.T) {
	g, err := builder.Star(4)
	require.NoError(t, err)
	r, err := planarity.Test(g)
	require.NoError(t, err)
	assert.True(t, r.Planar)
	assert.Len(t, r.Embedding, g.VertexCount())
}

func TestTriangle_Planar(t *testing.T) {
	g, err := builder.Cycle(3)
	require.NoError(t, err)
	r, err := planarity.Test(g)
	require.NoError(t, err)
	assert.True(t, r.Planar)
}

func TestSquareWithDiagonal_Planar(t *testing.T) {
	b := core.NewGraphBuilder()
	v0, v1, v2, v3 := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(v0, v1, false)
	b.AddEdge(v1, v2, false)
	b.AddEdge(v2, v3, false)
	b.AddEdge(v3, v0, false)
	b.AddEdge(v0, v2, false)
	g := b.Build()

	r, err := planarity.Test(g)
	require.NoError(t, err)
	assert.True(t, r.Planar)
}

func TestSelfLoop_Keep(t *testing.T) {
	b := core.NewGraphBuilder()
	v := b.AddVertex(nil)
	b.AddEdge(v, v, false)
	g := b.Build()

	r, err := planarity.Test(g, planarity.WithSelfLoopPolicy(planarity.SelfLoopsKeep))
	require.NoError(t, err)
	assert.True(t, r.Planar)
	assert.Len(t, r.Embedding[0], 2)
}

func TestSelfLoop_Ignore(t *testing.T) {
	b := core.NewGraphBuilder()
	v := b.AddVertex(nil)
	loop := b.AddEdge(v, v, false)
	g := b.Build()

	r, err := planarity.Test(g, planarity.WithSelfLoopPolicy(planarity.SelfLoopsIgnore))
	require.NoError(t, err)
	assert.True(t, r.Planar)
	assert.Equal(t, []core.EdgeID{loop}, r.IgnoredSelfLoops)
}

func TestDirectedInput_RejectedByDefault(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v := b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, true)
	g := b.Build()

	_, err := planarity.Test(g)
	assert.ErrorIs(t, err, planarity.ErrUnsupportedInput)

	r, err := planarity.Test(g, planarity.WithForceUndirected(true))
	require.NoError(t, err)
	assert.True(t, r.Planar)
}

func TestK5_NonPlanar(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	r, err := planarity.Test(g)
	require.NoError(t, err)
	assert.False(t, r.Planar)
	require.NotNil(t, r.Witness)
	assert.NotEmpty(t, r.Witness.Edges)
}

func TestK33_NonPlanar(t *testing.T) {
	g, err := builder.Bipartite(3, 3)
	require.NoError(t, err)
	r, err := planarity.Test(g)
	require.NoError(t, err)
	assert.False(t, r.Planar)
	require.NotNil(t, r.Witness)
	assert.NotEmpty(t, r.Witness.Edges)
}
