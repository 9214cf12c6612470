package layout

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/dual"
	"github.com/khalidsaidi/topoloom/internal/dsu"
	"github.com/khalidsaidi/topoloom/mesh"
	"github.com/khalidsaidi/topoloom/planarity"
)

// fragment is one piece of an original edge in the working planar graph.
// Fragments are oriented along the original edge, so concatenating a
// fragment list walks from the edge's U endpoint to its V endpoint
// through every dummy split in between.
type fragment struct {
	a, b core.VertexID
}

// planarizer is the working state of the insertion pipeline: the vertex
// count grows as dummies are allocated; every original edge maps to its
// ordered fragment chain.
type planarizer struct {
	g           *core.Graph
	vertexCount int
	kept        []core.EdgeID
	remaining   []core.EdgeID
	frags       map[core.EdgeID][]fragment
	dummies     int
}

// PlanarizationLayout draws an arbitrary (possibly nonplanar) graph by
// planarizing it first: a maximal planar subgraph is grown edge by edge
// in input order, every rejected edge is then inserted through a
// shortest dual route with one dummy vertex per crossed edge, and the
// planar-by-construction result is drawn in the requested mode. Each
// original edge's polyline is finally reassembled through its dummy
// chain.
//
// Crossings in the returned stats count the dummy vertices allocated;
// bends and area come from the chosen drawing mode.
func PlanarizationLayout(g *core.Graph, mode Mode) (*PlanarizationResult, error) {
	if mode != ModeStraight && mode != ModeOrthogonal {
		return nil, &LayoutError{Kind: KindInternal, Err: fmt.Errorf("unknown mode %q", mode)}
	}
	p := &planarizer{
		g:           g,
		vertexCount: g.VertexCount(),
		frags:       make(map[core.EdgeID][]fragment, g.EdgeCount()),
	}
	p.growMaximalPlanar()
	if err := p.insertRemaining(); err != nil {
		return nil, err
	}
	return p.draw(mode)
}

// growMaximalPlanar keeps each edge (in input order) that leaves the
// candidate graph planar. Edges bridging two components never need a
// planarity check; the union-find filters them out cheaply.
func (p *planarizer) growMaximalPlanar() {
	comp := dsu.New(p.g.VertexCount())
	for _, e := range p.g.Edges() {
		if e.IsLoop() {
			// A self-loop can never break planarity.
			p.keep(e)
			continue
		}
		if !comp.Connected(int(e.U), int(e.V)) {
			comp.Union(int(e.U), int(e.V))
			p.keep(e)
			continue
		}
		p.keep(e)
		if res, err := planarity.Test(p.currentGraph(), planarity.WithForceUndirected(true)); err != nil || !res.Planar {
			p.unkeep(e)
			p.remaining = append(p.remaining, e.ID)
		}
	}
}

func (p *planarizer) keep(e core.Edge) {
	p.kept = append(p.kept, e.ID)
	p.frags[e.ID] = []fragment{{a: e.U, b: e.V}}
}

func (p *planarizer) unkeep(e core.Edge) {
	p.kept = p.kept[:len(p.kept)-1]
	delete(p.frags, e.ID)
}

// currentGraph freezes the working state into a Graph: all allocated
// vertices, then every placed original edge's fragments in original edge
// id order. currentGraphIndexed also returns the index mapping current
// edge ids back to (original edge, fragment position); this drops it.
func (p *planarizer) currentGraph() *core.Graph {
	g, _ := p.currentGraphIndexed()
	return g
}

type fragRef struct {
	orig core.EdgeID
	pos  int
}

func (p *planarizer) currentGraphIndexed() (*core.Graph, []fragRef) {
	b := core.NewGraphBuilder()
	for i := 0; i < p.vertexCount; i++ {
		if i < p.g.VertexCount() {
			b.AddVertex(p.g.Label(core.VertexID(i)))
		} else {
			b.AddVertex(nil)
		}
	}
	var index []fragRef
	for _, e := range p.g.Edges() {
		chain, ok := p.frags[e.ID]
		if !ok {
			continue
		}
		for pos, f := range chain {
			b.AddEdge(f.a, f.b, false)
			index = append(index, fragRef{orig: e.ID, pos: pos})
		}
	}
	return b.Build(), index
}

// insertRemaining places every rejected edge through a shortest dual
// route on the current embedding, splitting each crossed fragment at a
// fresh dummy vertex.
func (p *planarizer) insertRemaining() error {
	for _, eid := range p.remaining {
		e, _ := p.g.Edge(eid)
		cur, index := p.currentGraphIndexed()
		m, err := p.embed(cur)
		if err != nil {
			return err
		}
		d := dual.Build(m)
		route := dual.RouteEdgeFixedEmbedding(m, d, e.U, e.V)
		if route == nil {
			return &LayoutError{Kind: KindInternal, Err: fmt.Errorf("no dual route for edge %d", eid)}
		}

		chain := make([]fragment, 0, len(route.CrossedPrimalEdges)+1)
		prev := e.U
		// Splitting shifts the chain positions of an edge's later
		// fragments, so track how many earlier positions of the same
		// original edge this route has already split.
		splitBefore := map[core.EdgeID][]int{}
		for _, crossed := range route.CrossedPrimalEdges {
			dummy := core.VertexID(p.vertexCount)
			p.vertexCount++
			p.dummies++
			ref := index[int(crossed)]
			shift := 0
			for _, q := range splitBefore[ref.orig] {
				if q < ref.pos {
					shift++
				}
			}
			splitBefore[ref.orig] = append(splitBefore[ref.orig], ref.pos)
			p.splitFragment(fragRef{orig: ref.orig, pos: ref.pos + shift}, dummy)
			chain = append(chain, fragment{a: prev, b: dummy})
			prev = dummy
		}
		chain = append(chain, fragment{a: prev, b: e.V})
		p.frags[eid] = chain
	}
	return nil
}

// splitFragment replaces one fragment of an original edge by the two
// pieces meeting at the dummy, preserving chain order.
func (p *planarizer) splitFragment(ref fragRef, dummy core.VertexID) {
	chain := p.frags[ref.orig]
	f := chain[ref.pos]
	next := make([]fragment, 0, len(chain)+1)
	next = append(next, chain[:ref.pos]...)
	next = append(next, fragment{a: f.a, b: dummy}, fragment{a: dummy, b: f.b})
	next = append(next, chain[ref.pos+1:]...)
	p.frags[ref.orig] = next
}

// embed runs the planarity test on a working graph (planar by
// construction) and builds its mesh.
func (p *planarizer) embed(cur *core.Graph) (*mesh.HalfEdgeMesh, error) {
	res, err := planarity.Test(cur, planarity.WithForceUndirected(true))
	if err != nil {
		return nil, &LayoutError{Kind: KindInternal, Err: err}
	}
	if !res.Planar {
		return nil, &LayoutError{Kind: KindInternal, Err: ErrNonPlanar}
	}
	m, err := mesh.Build(cur, res.Embedding)
	if err != nil {
		return nil, &LayoutError{Kind: KindInternal, Err: err}
	}
	return m, nil
}

// draw renders the final planar graph and reassembles each original
// edge's polyline through its dummy chain.
func (p *planarizer) draw(mode Mode) (*PlanarizationResult, error) {
	cur, index := p.currentGraphIndexed()
	m, err := p.embed(cur)
	if err != nil {
		return nil, err
	}

	var drawn *Result
	switch mode {
	case ModeStraight:
		drawn, err = PlanarStraightLine(cur, m)
	case ModeOrthogonal:
		drawn, err = OrthogonalLayout(cur, m)
	}
	if err != nil {
		return nil, err
	}

	// Per-fragment polylines, keyed by (original edge, chain position).
	fragPath := make(map[fragRef][]Point, len(index))
	for i, ref := range index {
		fragPath[ref] = drawn.EdgePaths[i].Points
	}

	positions := make(map[core.VertexID]Point, p.g.VertexCount())
	for v := 0; v < p.g.VertexCount(); v++ {
		positions[core.VertexID(v)] = drawn.Positions[core.VertexID(v)]
	}
	paths := make([]EdgePath, 0, p.g.EdgeCount())
	for _, e := range p.g.Edges() {
		chain := p.frags[e.ID]
		var pts []Point
		for pos := range chain {
			seg := fragPath[fragRef{orig: e.ID, pos: pos}]
			if len(pts) == 0 {
				pts = append(pts, seg...)
			} else {
				pts = append(pts, seg[1:]...)
			}
		}
		paths = append(paths, EdgePath{Edge: e.ID, Points: pts})
	}

	return &PlanarizationResult{
		Layout: &Result{
			Positions: positions,
			EdgePaths: paths,
			Stats: Stats{
				Bends:     drawn.Stats.Bends,
				Area:      drawn.Stats.Area,
				Crossings: p.dummies,
			},
		},
		RemainingEdges: append([]core.EdgeID(nil), p.remaining...),
		DummyCount:     p.dummies,
	}, nil
}
