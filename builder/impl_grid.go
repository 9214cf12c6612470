package builder

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
)

// Grid returns the rows x cols grid graph: each cell joined to its
// horizontal and vertical neighbors. Grids are planar by construction and
// make useful fixtures for the orthogonal layout pipeline, which expects
// sparse, low-degree input.
func Grid(rows, cols int, opts ...Option) (*core.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrTooFewVertices
	}
	o := newOptions(opts)
	b := core.NewGraphBuilder()
	ids := make([][]core.VertexID, rows)
	for r := 0; r < rows; r++ {
		ids[r] = make([]core.VertexID, cols)
		for c := 0; c < cols; c++ {
			ids[r][c] = b.AddVertex(fmt.Sprintf("%s%d_%d", o.labelPrefix, r, c))
		}
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddEdge(ids[r][c], ids[r][c+1], false)
			}
			if r+1 < rows {
				b.AddEdge(ids[r][c], ids[r+1][c], false)
			}
		}
	}
	return b.Build(), nil
}
