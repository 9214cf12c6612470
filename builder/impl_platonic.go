package builder

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
)

func namedVertices(b *core.GraphBuilder, prefix string, n int) []core.VertexID {
	vs := make([]core.VertexID, n)
	for i := range vs {
		vs[i] = b.AddVertex(fmt.Sprintf("%s%d", prefix, i))
	}
	return vs
}

// Tetrahedron returns the tetrahedron's 1-skeleton: K4, the smallest
// 3-connected planar graph.
func Tetrahedron(opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	v := namedVertices(b, o.labelPrefix, 4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			b.AddEdge(v[i], v[j], false)
		}
	}
	return b.Build(), nil
}

// Cube returns the cube's 1-skeleton: 8 vertices, each of degree 3, a
// standard fixture for bend-minimizing orthogonal layout since it is
// already 3-regular and planar.
func Cube(opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	v := namedVertices(b, o.labelPrefix, 8)
	// Two square faces 0-1-2-3 and 4-5-6-7, joined by vertical edges.
	face := func(a, c, d, e int) {
		b.AddEdge(v[a], v[c], false)
		b.AddEdge(v[c], v[d], false)
		b.AddEdge(v[d], v[e], false)
		b.AddEdge(v[e], v[a], false)
	}
	face(0, 1, 2, 3)
	face(4, 5, 6, 7)
	for i := 0; i < 4; i++ {
		b.AddEdge(v[i], v[i+4], false)
	}
	return b.Build(), nil
}

// Octahedron returns the octahedron's 1-skeleton: 6 vertices, each of
// degree 4, formed from three pairs of antipodal (non-adjacent) vertices
// with every other pair joined.
func Octahedron(opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	v := namedVertices(b, o.labelPrefix, 6)
	antipodal := map[[2]int]bool{{0, 1}: true, {1, 0}: true, {2, 3}: true, {3, 2}: true, {4, 5}: true, {5, 4}: true}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if antipodal[[2]int{i, j}] {
				continue
			}
			b.AddEdge(v[i], v[j], false)
		}
	}
	return b.Build(), nil
}
