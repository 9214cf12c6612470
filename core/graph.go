package core

import "fmt"

// Graph is an immutable labeled multigraph snapshot: a fixed vertex count,
// a fixed list of edges, and per-vertex adjacency in insertion order. It is
// produced once by GraphBuilder.Build and never mutated afterwards; every
// algorithm in TopoLoom that "modifies" a Graph instead produces a new one
// (or a new derived value, such as a RotationSystem or a half-edge mesh).
//
// Complexity: all read accessors below are O(1) or O(deg(v)); there is no
// internal locking because there is nothing to protect against.
type Graph struct {
	labels []interface{}    // VertexID -> caller-supplied label
	edges  []Edge           // EdgeID -> Edge
	adj    [][]EdgeID       // VertexID -> incident edge ids, insertion order
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.labels) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Vertices returns all vertex ids in id order, i.e. [0, VertexCount).
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, len(g.labels))
	for i := range out {
		out[i] = VertexID(i)
	}
	return out
}

// Edges returns all edges in id order, i.e. [0, EdgeCount).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Edge returns the edge with the given id.
func (g *Graph) Edge(id EdgeID) (Edge, bool) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, false
	}
	return g.edges[id], true
}

// Label returns the caller-supplied label for v, or nil if v is out of
// range.
func (g *Graph) Label(v VertexID) interface{} {
	if v < 0 || int(v) >= len(g.labels) {
		return nil
	}
	return g.labels[v]
}

// Adjacency returns the ids of edges incident to v, in the order they were
// added during construction. A self-loop at v appears exactly once in this
// list (its two "sides" are the same edge id).
func (g *Graph) Adjacency(v VertexID) []EdgeID {
	if v < 0 || int(v) >= len(g.adj) {
		return nil
	}
	out := make([]EdgeID, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// Degree returns len(Adjacency(v)), counting a self-loop once.
func (g *Graph) Degree(v VertexID) int {
	if v < 0 || int(v) >= len(g.adj) {
		return 0
	}
	return len(g.adj[v])
}

// HasDirectedEdges reports whether any edge in the graph is directed.
func (g *Graph) HasDirectedEdges() bool {
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}
	return false
}

// HasSelfLoops reports whether any edge is a self-loop.
func (g *Graph) HasSelfLoops() bool {
	for _, e := range g.edges {
		if e.IsLoop() {
			return true
		}
	}
	return false
}

// HasParallelEdges reports whether any unordered pair of distinct vertices
// is connected by more than one edge.
func (g *Graph) HasParallelEdges() bool {
	seen := make(map[[2]VertexID]bool, len(g.edges))
	for _, e := range g.edges {
		if e.IsLoop() {
			continue
		}
		key := [2]VertexID{e.U, e.V}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if seen[key] {
			return true
		}
		seen[key] = true
	}
	return false
}

// String renders a short, deterministic summary useful in test failures and
// panics; it is not a serialization format.
func (g *Graph) String() string {
	return fmt.Sprintf("core.Graph{V:%d E:%d}", g.VertexCount(), g.EdgeCount())
}
