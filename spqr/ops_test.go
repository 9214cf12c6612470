package spqr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/mesh"
	"github.com/khalidsaidi/topoloom/spqr"
)

// requireValidEmbedding checks rot is a structurally valid rotation
// system of g and returns its mesh.
func requireValidEmbedding(t *testing.T, g *core.Graph, rot core.RotationSystem) *mesh.HalfEdgeMesh {
	t.Helper()
	m, err := mesh.Build(g, rot)
	require.NoError(t, err)
	return m
}

func TestMaterializeEmbedding_SingleRigid(t *testing.T) {
	g := squareWithDiagonal()
	tree, err := spqr.Decompose(g)
	require.NoError(t, err)

	rot, err := spqr.MaterializeEmbedding(tree, tree.Root)
	require.NoError(t, err)
	m := requireValidEmbedding(t, g, rot)
	// Euler: f = 2 - n + m for one connected component.
	assert.Len(t, m.Faces, 2-g.VertexCount()+g.EdgeCount())
}

func TestMaterializeEmbedding_Theta(t *testing.T) {
	g := theta()
	tree, err := spqr.Decompose(g)
	require.NoError(t, err)

	rot, err := spqr.MaterializeEmbedding(tree, tree.Root)
	require.NoError(t, err)
	m := requireValidEmbedding(t, g, rot)
	assert.Len(t, m.Faces, 3)
}

func TestFlipSkeleton_MirrorsRigidEmbedding(t *testing.T) {
	g := squareWithDiagonal()
	tree, err := spqr.Decompose(g)
	require.NoError(t, err)

	before, err := spqr.MaterializeEmbedding(tree, tree.Root)
	require.NoError(t, err)
	require.NoError(t, spqr.FlipSkeleton(tree, tree.Root))
	after, err := spqr.MaterializeEmbedding(tree, tree.Root)
	require.NoError(t, err)

	for v := range before {
		rev := make([]core.EdgeID, len(after[v]))
		for i, e := range after[v] {
			rev[len(rev)-1-i] = e
		}
		assert.Equal(t, before[v], rev, "vertex %d", v)
	}

	// Flipping twice restores the original.
	require.NoError(t, spqr.FlipSkeleton(tree, tree.Root))
	again, err := spqr.MaterializeEmbedding(tree, tree.Root)
	require.NoError(t, err)
	assert.Equal(t, before, again)
}

func TestFlipSkeleton_RejectsNonRigid(t *testing.T) {
	tree, err := spqr.Decompose(triangle())
	require.NoError(t, err)
	assert.ErrorIs(t, spqr.FlipSkeleton(tree, tree.Root), spqr.ErrBadNode)
	assert.ErrorIs(t, spqr.FlipSkeleton(tree, 99), spqr.ErrBadNode)
}

func TestPermuteParallel_ReordersBundle(t *testing.T) {
	g := theta()
	tree, err := spqr.Decompose(g)
	require.NoError(t, err)
	root := tree.Root
	require.Equal(t, spqr.ParallelNode, tree.Nodes[root].Kind)

	before, err := spqr.MaterializeEmbedding(tree, root)
	require.NoError(t, err)

	require.NoError(t, spqr.PermuteParallel(tree, root, []int{2, 1, 0}))
	after, err := spqr.MaterializeEmbedding(tree, root)
	require.NoError(t, err)

	// The bundle order at the pole flips; the embedding stays valid.
	assert.NotEqual(t, before[0], after[0])
	m := requireValidEmbedding(t, g, after)
	assert.Len(t, m.Faces, 3)
}

func TestPermuteParallel_Validation(t *testing.T) {
	tree, err := spqr.Decompose(theta())
	require.NoError(t, err)
	assert.ErrorIs(t, spqr.PermuteParallel(tree, tree.Root, []int{0, 1}), spqr.ErrBadPermutation)
	assert.ErrorIs(t, spqr.PermuteParallel(tree, tree.Root, []int{0, 0, 1}), spqr.ErrBadPermutation)

	// Not a P node.
	tri, err := spqr.Decompose(triangle())
	require.NoError(t, err)
	assert.ErrorIs(t, spqr.PermuteParallel(tri, tri.Root, []int{0, 1, 2}), spqr.ErrBadNode)
}
