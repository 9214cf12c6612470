package layout

import "github.com/khalidsaidi/topoloom/core"

// Point is one drawing coordinate. Straight-line mode produces float
// positions; orthogonal mode produces integer-valued ones after rank
// compaction.
type Point struct {
	X, Y float64
}

// EdgePath is the drawn polyline of one edge, in drawing order from its
// U endpoint to its V endpoint.
type EdgePath struct {
	Edge   core.EdgeID
	Points []Point
}

// Stats summarizes a drawing: total bend count, occupied area, and the
// number of edge crossings.
type Stats struct {
	Bends     int
	Area      float64
	Crossings int
}

// Result is one finished drawing: a position per vertex, a polyline per
// edge (in edge-id order), and the drawing's stats.
type Result struct {
	Positions map[core.VertexID]Point
	EdgePaths []EdgePath
	Stats     Stats
}

// Mode selects the drawing style of the planarization pipeline.
type Mode string

const (
	// ModeStraight draws the planarized graph with straight segments.
	ModeStraight Mode = "straight"
	// ModeOrthogonal draws it with axis-aligned segments.
	ModeOrthogonal Mode = "orthogonal"
)

// PlanarizationResult is the outcome of PlanarizationLayout: the drawing
// of the original graph with every non-kept edge routed through its
// dummy crossing vertices, plus the pipeline's bookkeeping.
type PlanarizationResult struct {
	Layout *Result
	// RemainingEdges lists, in input order, the edges that did not fit
	// the maximal planar subgraph and were inserted via dual routing.
	RemainingEdges []core.EdgeID
	// DummyCount is the number of crossing vertices the insertion phase
	// allocated; it equals Layout.Stats.Crossings.
	DummyCount int
}
