package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/builder"
	"github.com/khalidsaidi/topoloom/layout"
)

// requireOrthogonal asserts every segment of every path is axis-aligned
// and consecutive segments meet at right angles.
func requireOrthogonal(t *testing.T, r *layout.Result) {
	t.Helper()
	for _, ep := range r.EdgePaths {
		for i := 0; i+1 < len(ep.Points); i++ {
			a, b := ep.Points[i], ep.Points[i+1]
			require.True(t, a.X == b.X || a.Y == b.Y,
				"edge %d segment %d is not axis-aligned", ep.Edge, i)
		}
		for i := 0; i+2 < len(ep.Points); i++ {
			a, b, c := ep.Points[i], ep.Points[i+1], ep.Points[i+2]
			horizontal1 := a.Y == b.Y && a.X != b.X
			horizontal2 := b.Y == c.Y && b.X != c.X
			require.NotEqual(t, horizontal1, horizontal2,
				"edge %d does not turn 90 degrees at point %d", ep.Edge, i+1)
		}
	}
}

func TestOrthogonalLayout_TriangleZeroBends(t *testing.T) {
	g, err := builder.Cycle(3)
	require.NoError(t, err)
	r, err := layout.OrthogonalLayout(g, embed(t, g))
	require.NoError(t, err)

	assert.Equal(t, 0, r.Stats.Bends)
	assert.Equal(t, 0, r.Stats.Crossings)
	requireOrthogonal(t, r)
}

func TestOrthogonalLayout_IntegerCoordinates(t *testing.T) {
	g, err := builder.Wheel(5)
	require.NoError(t, err)
	r, err := layout.OrthogonalLayout(g, embed(t, g))
	require.NoError(t, err)

	for v, p := range r.Positions {
		assert.Equal(t, float64(int(p.X)), p.X, "vertex %d x", v)
		assert.Equal(t, float64(int(p.Y)), p.Y, "vertex %d y", v)
	}
	requireOrthogonal(t, r)
}

func TestOrthogonalLayout_GridStaysOrthogonal(t *testing.T) {
	g, err := builder.Grid(3, 3)
	require.NoError(t, err)
	r, err := layout.OrthogonalLayout(g, embed(t, g))
	require.NoError(t, err)
	requireOrthogonal(t, r)
	assert.Greater(t, r.Stats.Area, 0.0)
}

func TestOrthogonalLayout_Deterministic(t *testing.T) {
	g, err := builder.Cube()
	require.NoError(t, err)
	m := embed(t, g)
	first, err := layout.OrthogonalLayout(g, m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := layout.OrthogonalLayout(g, m)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
