package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalidsaidi/topoloom/builder"
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/mesh"
	"github.com/khalidsaidi/topoloom/planarity"
)

// TestMeshInvariants_Fixtures checks the structural half-edge invariants
// on a spread of planar fixtures: twin is an involution, next is a
// permutation whose cycles are exactly the face list, face sizes sum to
// 2m, and Euler's formula holds per connected embedding.
func TestMeshInvariants_Fixtures(t *testing.T) {
	fixtures := map[string]func() (*core.Graph, error){
		"cycle3":  func() (*core.Graph, error) { return builder.Cycle(3) },
		"cycle7":  func() (*core.Graph, error) { return builder.Cycle(7) },
		"path5":   func() (*core.Graph, error) { return builder.Path(5) },
		"star6":   func() (*core.Graph, error) { return builder.Star(6) },
		"wheel6":  func() (*core.Graph, error) { return builder.Wheel(6) },
		"grid3x4": func() (*core.Graph, error) { return builder.Grid(3, 4) },
		"cube":    func() (*core.Graph, error) { return builder.Cube() },
		"tetra":   func() (*core.Graph, error) { return builder.Tetrahedron() },
		"octa":    func() (*core.Graph, error) { return builder.Octahedron() },
	}
	for name, mk := range fixtures {
		t.Run(name, func(t *testing.T) {
			g, err := mk()
			require.NoError(t, err)
			res, err := planarity.Test(g)
			require.NoError(t, err)
			require.True(t, res.Planar)
			m, err := mesh.Build(g, res.Embedding)
			require.NoError(t, err)

			// twin∘twin = id.
			for h := range m.Twin {
				assert.Equal(t, h, m.Twin[m.Twin[h]])
			}

			// next is a permutation: every half-edge has exactly one
			// predecessor.
			seenTarget := make([]bool, len(m.Next))
			for _, nxt := range m.Next {
				assert.False(t, seenTarget[nxt], "next is not injective")
				seenTarget[nxt] = true
			}

			// Every half-edge sits in exactly one face cycle, and
			// Σ|face| = 2m.
			seen := make([]bool, len(m.Twin))
			total := 0
			for _, cycle := range m.Faces {
				for _, h := range cycle {
					assert.False(t, seen[h], "half-edge in two faces")
					seen[h] = true
					total++
				}
			}
			assert.Equal(t, 2*g.EdgeCount(), total)

			// Iterating next from any half-edge returns to it within its
			// own face.
			for _, cycle := range m.Faces {
				h := cycle[0]
				cur := h
				for range cycle {
					cur = m.Next[cur]
				}
				assert.Equal(t, h, cur)
			}

			// Euler: n - m + f = 2 for these connected fixtures.
			assert.Equal(t, 2, g.VertexCount()-g.EdgeCount()+len(m.Faces))
		})
	}
}
