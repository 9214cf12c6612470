package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/builder"
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/layout"
)

func TestPlanarizationLayout_K5(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	r, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)

	assert.Len(t, r.RemainingEdges, 1)
	assert.Equal(t, 1, r.DummyCount)
	assert.Equal(t, 1, r.Layout.Stats.Crossings)
	assert.Len(t, r.Layout.EdgePaths, g.EdgeCount())
	assert.Len(t, r.Layout.Positions, g.VertexCount())

	// The inserted edge's polyline passes through its dummy: one more
	// point than a straight segment.
	inserted := r.RemainingEdges[0]
	for _, ep := range r.Layout.EdgePaths {
		if ep.Edge == inserted {
			assert.Len(t, ep.Points, 3)
		}
	}
}

func TestPlanarizationLayout_K33(t *testing.T) {
	g, err := builder.Bipartite(3, 3)
	require.NoError(t, err)
	r, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)

	assert.Len(t, r.RemainingEdges, 1)
	assert.Equal(t, 1, r.DummyCount)
	assert.Equal(t, 1, r.Layout.Stats.Crossings)
}

func TestPlanarizationLayout_PlanarInputPassesThrough(t *testing.T) {
	g, err := builder.Cube()
	require.NoError(t, err)
	r, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)

	assert.Empty(t, r.RemainingEdges)
	assert.Equal(t, 0, r.DummyCount)
	assert.Equal(t, 0, r.Layout.Stats.Crossings)
}

func TestPlanarizationLayout_OrthogonalMode(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	r, err := layout.PlanarizationLayout(g, layout.ModeOrthogonal)
	require.NoError(t, err)

	assert.Equal(t, 1, r.DummyCount)
	for _, ep := range r.Layout.EdgePaths {
		for i := 0; i+1 < len(ep.Points); i++ {
			a, b := ep.Points[i], ep.Points[i+1]
			assert.True(t, a.X == b.X || a.Y == b.Y,
				"edge %d segment %d not axis-aligned", ep.Edge, i)
		}
	}
}

func TestPlanarizationLayout_RemainingMatchesCrossings(t *testing.T) {
	// K6 needs three edge insertions under the one-insert-per-edge
	// policy; each insertion allocates at least one dummy.
	g, err := builder.Complete(6)
	require.NoError(t, err)
	r, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)

	assert.NotEmpty(t, r.RemainingEdges)
	assert.Equal(t, r.DummyCount, r.Layout.Stats.Crossings)
	assert.Len(t, r.Layout.EdgePaths, g.EdgeCount())
}

func TestPlanarizationLayout_BadMode(t *testing.T) {
	g, err := builder.Cycle(3)
	require.NoError(t, err)
	_, err = layout.PlanarizationLayout(g, layout.Mode("squiggly"))
	var le *layout.LayoutError
	assert.ErrorAs(t, err, &le)
}

func TestPlanarizationLayout_Deterministic(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)
	first, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := layout.PlanarizationLayout(g, layout.ModeStraight)
		require.NoError(t, err)
		assert.Equal(t, first.RemainingEdges, again.RemainingEdges)
		assert.Equal(t, first.DummyCount, again.DummyCount)
		assert.Equal(t, first.Layout, again.Layout)
	}
}

func TestPlanarizationLayout_LabeledTrianglePositionsEveryVertex(t *testing.T) {
	b := core.NewGraphBuilder()
	u := b.AddVertex("u")
	v := b.AddVertex("v")
	w := b.AddVertex("w")
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	b.AddEdge(w, u, false)
	g := b.Build()
	r, err := layout.PlanarizationLayout(g, layout.ModeStraight)
	require.NoError(t, err)
	assert.Len(t, r.Layout.Positions, 3)
}
