package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/converters"
	"github.com/khalidsaidi/topoloom/core"
)

func TestToGonum_Basic(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v, w := b.AddVertex("u"), b.AddVertex("v"), b.AddVertex("w")
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	ug, err := converters.ToGonum(b.Build())
	require.NoError(t, err)

	assert.Equal(t, 3, ug.Nodes().Len())
	assert.True(t, ug.HasEdgeBetween(0, 1))
	assert.True(t, ug.HasEdgeBetween(1, 2))
	assert.False(t, ug.HasEdgeBetween(0, 2))
}

func TestToGonum_CollapsesParallelEdges(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v := b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	b.AddEdge(u, v, false)
	ug, err := converters.ToGonum(b.Build())
	require.NoError(t, err)
	assert.Equal(t, 1, ug.Edges().Len())
}

func TestToGonum_RejectsSelfLoops(t *testing.T) {
	b := core.NewGraphBuilder()
	u := b.AddVertex(nil)
	b.AddEdge(u, u, false)
	_, err := converters.ToGonum(b.Build())
	assert.ErrorIs(t, err, converters.ErrUnsupportedGraph)
}
