package order

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/bcc"
	"github.com/khalidsaidi/topoloom/core"
)

// STNumbering computes an st-numbering of g rooted at s and t. g must be
// biconnected (or the trivial two-vertex, single-edge case).
func STNumbering(g *core.Graph, s, t core.VertexID) (*Numbering, error) {
	if !isBiconnected(g) {
		return nil, fmt.Errorf("%w", ErrNotBiconnected)
	}

	p0 := shortestPath(g, s, t)
	if p0 == nil {
		return nil, fmt.Errorf("%w", ErrNoPath)
	}

	seq := make([]core.VertexID, len(p0))
	copy(seq, p0)
	pos := make(map[core.VertexID]int, g.VertexCount())
	for i, v := range seq {
		pos[v] = i
	}

	covered := make(map[core.VertexID]bool, g.VertexCount())
	for _, v := range seq {
		covered[v] = true
	}
	coveredEdge := make([]bool, g.EdgeCount())
	for i := 0; i < len(p0)-1; i++ {
		coveredEdge[edgeBetween(g, p0[i], p0[i+1])] = true
	}

	for {
		eid, found := nextUncoveredEdge(g, covered, coveredEdge)
		if !found {
			break
		}
		e, _ := g.Edge(eid)
		interior, endB := growEar(g, e, covered, coveredEdge)
		if endB < 0 {
			// Both endpoints already covered: a chord, no new vertices.
			coveredEdge[eid] = true
			continue
		}

		u, w := e.U, endB
		if !covered[e.U] {
			u, w = endB, e.U
		}
		lo := u
		path := interior
		if pos[u] > pos[w] {
			lo = w
			path = reverseVertices(interior)
		}

		insertAt := pos[lo] + 1
		seq = spliceVertices(seq, insertAt, path)
		for i := insertAt; i < len(seq); i++ {
			pos[seq[i]] = i
		}
		for _, v := range path {
			covered[v] = true
		}
	}

	st := make([]int, g.VertexCount())
	for i, v := range seq {
		st[v] = i + 1
	}
	return &Numbering{ST: st, S: s, T: t}, nil
}

func isBiconnected(g *core.Graph) bool {
	if g.VertexCount() <= 1 {
		return false
	}
	if g.VertexCount() == 2 {
		return g.EdgeCount() >= 1
	}
	r := bcc.Compute(g)
	return len(r.Blocks) == 1 && len(r.Articulation) == 0
}

// shortestPath returns the vertex sequence of a shortest s-t path using
// BFS over adjacency (insertion) order, or nil if none exists.
func shortestPath(g *core.Graph, s, t core.VertexID) []core.VertexID {
	parent := make([]core.VertexID, g.VertexCount())
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, g.VertexCount())
	visited[s] = true
	queue := []core.VertexID{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == t {
			break
		}
		for _, eid := range g.Adjacency(v) {
			e, _ := g.Edge(eid)
			if e.IsLoop() {
				continue
			}
			w := e.Other(v)
			if !visited[w] {
				visited[w] = true
				parent[w] = v
				queue = append(queue, w)
			}
		}
	}
	if !visited[t] {
		return nil
	}
	var rev []core.VertexID
	for cur := t; ; cur = parent[cur] {
		rev = append(rev, cur)
		if cur == s {
			break
		}
	}
	out := make([]core.VertexID, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

func edgeBetween(g *core.Graph, u, v core.VertexID) core.EdgeID {
	for _, eid := range g.Adjacency(u) {
		e, _ := g.Edge(eid)
		if e.Other(u) == v {
			return eid
		}
	}
	return -1
}

// nextUncoveredEdge returns the lowest-id uncovered edge with at least one
// covered endpoint, so every ear starts from the numbered part of g.
func nextUncoveredEdge(g *core.Graph, covered map[core.VertexID]bool, coveredEdge []bool) (core.EdgeID, bool) {
	for _, e := range g.Edges() {
		if !coveredEdge[e.ID] && (covered[e.U] || covered[e.V]) {
			return e.ID, true
		}
	}
	return -1, false
}

// growEar grows a maximal simple path of uncovered vertices starting from
// whichever endpoint of e is not yet covered, walking via uncovered edges
// and vertices until it reaches a covered vertex. Returns the interior
// vertices (in walk order, not including either endpoint) and the
// terminal covered vertex; endB is -1 if e's both endpoints were already
// covered (a chord, no growth needed).
func growEar(g *core.Graph, e core.Edge, covered map[core.VertexID]bool, coveredEdge []bool) ([]core.VertexID, core.VertexID) {
	var start, from core.VertexID
	switch {
	case !covered[e.U] && !covered[e.V]:
		// Neither endpoint covered yet: shouldn't happen in a connected
		// graph processed via nextUncoveredEdge order, but guard anyway
		// by treating e.U as the walk start.
		start, from = e.U, e.V
	case !covered[e.U]:
		start, from = e.U, e.V
	case !covered[e.V]:
		start, from = e.V, e.U
	default:
		return nil, -1
	}

	coveredEdge[e.ID] = true
	var interior []core.VertexID
	cur := start
	prev := from
	for {
		interior = append(interior, cur)
		var next core.VertexID = -1
		var nextEdge core.EdgeID = -1
		for _, eid := range g.Adjacency(cur) {
			if coveredEdge[eid] {
				continue
			}
			ee, _ := g.Edge(eid)
			if ee.IsLoop() {
				continue
			}
			w := ee.Other(cur)
			if w == prev {
				continue
			}
			next, nextEdge = w, eid
			break
		}
		if next < 0 {
			// No further uncovered edge from cur; cur itself must be the
			// attachment point if covered, otherwise the ear is just a
			// pendant (shouldn't occur in a biconnected graph, but stop
			// gracefully).
			break
		}
		coveredEdge[nextEdge] = true
		if covered[next] {
			return interior, next
		}
		prev, cur = cur, next
	}
	// cur is the terminal vertex with no further edges; if it happens to
	// already be covered, treat it as the attachment.
	last := interior[len(interior)-1]
	interior = interior[:len(interior)-1]
	return interior, last
}

func reverseVertices(vs []core.VertexID) []core.VertexID {
	out := make([]core.VertexID, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}

func spliceVertices(seq []core.VertexID, at int, ins []core.VertexID) []core.VertexID {
	out := make([]core.VertexID, 0, len(seq)+len(ins))
	out = append(out, seq[:at]...)
	out = append(out, ins...)
	out = append(out, seq[at:]...)
	return out
}
