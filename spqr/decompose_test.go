package spqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/spqr"
)

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

// theta builds two poles joined by three internal paths: the smallest
// graph whose decomposition is a P node with three S children.
func theta() *core.Graph {
	b := core.NewGraphBuilder()
	a := b.AddVertex(nil) // 0
	z := b.AddVertex(nil) // 1
	for i := 0; i < 3; i++ {
		mid := b.AddVertex(nil)
		b.AddEdge(a, mid, false)
		b.AddEdge(mid, z, false)
	}
	return b.Build()
}

func triangle() *core.Graph {
	b := core.NewGraphBuilder()
	u, v, w := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	b.AddEdge(w, u, false)
	return b.Build()
}

func TestDecompose_SquareWithDiagonal_SingleRigid(t *testing.T) {
	tree, err := spqr.Decompose(squareWithDiagonal())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)
	n := tree.Nodes[0]
	assert.Equal(t, spqr.RigidNode, n.Kind)
	assert.Len(t, n.Skeleton.VertexMap, 4)
	assert.Len(t, n.Skeleton.Edges, 5)

	rep := spqr.Validate(tree)
	assert.True(t, rep.Ok, "problems: %v", rep.Problems)
}

func TestDecompose_Triangle_SingleSeries(t *testing.T) {
	tree, err := spqr.Decompose(triangle())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, spqr.SeriesNode, tree.Nodes[0].Kind)
	assert.True(t, spqr.Validate(tree).Ok)
}

func TestDecompose_SingleEdge_Q(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v := b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	tree, err := spqr.Decompose(b.Build())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, spqr.EdgeNode, tree.Nodes[0].Kind)
	assert.True(t, spqr.Validate(tree).Ok)
}

func TestDecompose_ParallelBundle_P(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v := b.AddVertex(nil), b.AddVertex(nil)
	for i := 0; i < 3; i++ {
		b.AddEdge(u, v, false)
	}
	tree, err := spqr.Decompose(b.Build())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, spqr.ParallelNode, tree.Nodes[0].Kind)
	assert.True(t, spqr.Validate(tree).Ok)
}

func TestDecompose_Theta_PWithThreeSeries(t *testing.T) {
	tree, err := spqr.Decompose(theta())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 4)

	kinds := map[spqr.NodeKind]int{}
	for _, n := range tree.Nodes {
		kinds[n.Kind]++
	}
	assert.Equal(t, 1, kinds[spqr.ParallelNode])
	assert.Equal(t, 3, kinds[spqr.SeriesNode])

	root := tree.Nodes[tree.Root]
	assert.Equal(t, spqr.ParallelNode, root.Kind)
	assert.Len(t, root.Neighbors, 3)

	rep := spqr.Validate(tree)
	assert.True(t, rep.Ok, "problems: %v", rep.Problems)
}

func TestDecompose_DoubledTriangleEdge_PPlusS(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v, w := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	b.AddEdge(w, u, false)
	tree, err := spqr.Decompose(b.Build())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 2)
	assert.Equal(t, spqr.ParallelNode, tree.Nodes[0].Kind)
	assert.Equal(t, spqr.SeriesNode, tree.Nodes[1].Kind)
	assert.True(t, spqr.Validate(tree).Ok)
}

func TestDecompose_K4_SingleRigid(t *testing.T) {
	b := core.NewGraphBuilder()
	var vs []core.VertexID
	for i := 0; i < 4; i++ {
		vs = append(vs, b.AddVertex(nil))
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			b.AddEdge(vs[i], vs[j], false)
		}
	}
	tree, err := spqr.Decompose(b.Build())
	require.NoError(t, err)
	require.Len(t, tree.Nodes, 1)
	assert.Equal(t, spqr.RigidNode, tree.Nodes[0].Kind)
	assert.True(t, spqr.Validate(tree).Ok)
}

func TestDecompose_RejectsNotBiconnected(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v, w := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	_, err := spqr.Decompose(b.Build())
	assert.ErrorIs(t, err, spqr.ErrNotBiconnected)
}

func TestDecompose_RejectsDirectedAndLoops(t *testing.T) {
	b := core.NewGraphBuilder()
	u, v := b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, true)
	_, err := spqr.Decompose(b.Build())
	assert.ErrorIs(t, err, spqr.ErrUnsupportedInput)

	b2 := core.NewGraphBuilder()
	x := b2.AddVertex(nil)
	b2.AddEdge(x, x, false)
	_, err = spqr.Decompose(b2.Build())
	assert.ErrorIs(t, err, spqr.ErrUnsupportedInput)
}

func TestDecomposeAll_Path(t *testing.T) {
	b := core.NewGraphBuilder()
	var vs []core.VertexID
	for i := 0; i < 4; i++ {
		vs = append(vs, b.AddVertex(nil))
	}
	for i := 0; i < 3; i++ {
		b.AddEdge(vs[i], vs[i+1], false)
	}
	f, err := spqr.DecomposeAll(b.Build())
	require.NoError(t, err)
	require.Len(t, f.Trees, 3)
	for _, tree := range f.Trees {
		require.Len(t, tree.Nodes, 1)
		assert.Equal(t, spqr.EdgeNode, tree.Nodes[0].Kind)
	}
	assert.ElementsMatch(t, []core.VertexID{1, 2}, f.Articulation)
}

func TestDecomposeSafe_PicksLargestBlock(t *testing.T) {
	// A triangle with a pendant edge: the triangle is the largest block.
	b := core.NewGraphBuilder()
	u, v, w, x := b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil), b.AddVertex(nil)
	b.AddEdge(u, v, false)
	b.AddEdge(v, w, false)
	b.AddEdge(w, u, false)
	b.AddEdge(w, x, false)
	r, err := spqr.DecomposeSafe(b.Build())
	require.NoError(t, err)
	require.Len(t, r.Tree.Nodes, 1)
	assert.Equal(t, spqr.SeriesNode, r.Tree.Nodes[0].Kind)
	assert.Len(t, r.Tree.Nodes[0].Skeleton.Edges, 3)
	assert.Contains(t, r.Note, "largest block")
}

func TestDecompose_Deterministic(t *testing.T) {
	g := theta()
	first, err := spqr.Decompose(g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := spqr.Decompose(g)
		require.NoError(t, err)
		require.Len(t, again.Nodes, len(first.Nodes))
		for j := range first.Nodes {
			assert.Equal(t, first.Nodes[j].Kind, again.Nodes[j].Kind)
			assert.Equal(t, first.Nodes[j].Skeleton, again.Nodes[j].Skeleton)
		}
	}
}
