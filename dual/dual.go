package dual

import (
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/mesh"
)

// Graph is the dual of a half-edge mesh: one node per face, one arc per
// directed primal half-edge.
type Graph struct {
	FaceCount int
	// EdgeFaces[e] gives the dual arc induced by primal edge e, read from
	// its half-edge h = 2e: the face to h's left is mesh.Face[h], the face
	// on the other side is mesh.Face[mesh.Twin[h]].
	EdgeFaces map[core.EdgeID][2]mesh.FaceID // {left, right} of edge e, as seen from half-edge 2e
}

// Build constructs the dual graph of m.
func Build(m *mesh.HalfEdgeMesh) *Graph {
	d := &Graph{
		FaceCount: len(m.Faces),
		EdgeFaces: make(map[core.EdgeID][2]mesh.FaceID, len(m.Twin)/2),
	}
	for h := 0; h < len(m.Twin); h += 2 {
		left := m.Face[h]
		right := m.Face[m.Twin[h]]
		d.EdgeFaces[core.EdgeID(h/2)] = [2]mesh.FaceID{left, right}
	}
	return d
}

// queueItem pairs a face id with its BFS depth and the dual arc (primal
// edge) used to reach it.
type queueItem struct {
	face    mesh.FaceID
	depth   int
	parent  mesh.FaceID
	viaEdge core.EdgeID
}

// RouteResult is the outcome of routeEdgeFixedEmbedding: the sequence of
// primal edges crossed to connect u and v without altering the embedding.
type RouteResult struct {
	CrossedPrimalEdges []core.EdgeID
}

// RouteEdgeFixedEmbedding finds the minimum-length sequence of primal
// edges to cross to connect u and v, starting in any face incident to u
// and ending in any face incident to v. Ties are broken by smallest dual
// arc (primal edge id) at each BFS step, then by smallest face id.
// Returns nil if u or v is absent from the mesh.
func RouteEdgeFixedEmbedding(m *mesh.HalfEdgeMesh, d *Graph, u, v core.VertexID) *RouteResult {
	sources := m.FacesIncidentTo(u)
	targets := make(map[mesh.FaceID]bool)
	for _, f := range m.FacesIncidentTo(v) {
		targets[f] = true
	}
	if len(sources) == 0 || len(targets) == 0 {
		return nil
	}

	visited := make([]bool, d.FaceCount)
	cameFrom := make(map[mesh.FaceID]queueItem)
	var queue []queueItem
	for _, f := range sources {
		if !visited[f] {
			visited[f] = true
			queue = append(queue, queueItem{face: f, depth: 0})
		}
		if targets[f] {
			return &RouteResult{}
		}
	}

	adj := buildFaceAdjacency(m, d)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur.face] {
			if visited[nb.face] {
				continue
			}
			visited[nb.face] = true
			item := queueItem{face: nb.face, depth: cur.depth + 1, parent: cur.face, viaEdge: nb.edge}
			cameFrom[nb.face] = item
			if targets[nb.face] {
				return &RouteResult{CrossedPrimalEdges: reconstruct(cameFrom, sources, nb.face)}
			}
			queue = append(queue, item)
		}
	}
	return nil
}

type faceArc struct {
	face mesh.FaceID
	edge core.EdgeID
}

// buildFaceAdjacency returns, per face, its dual neighbors in increasing
// primal-edge-id order for deterministic BFS expansion.
func buildFaceAdjacency(m *mesh.HalfEdgeMesh, d *Graph) map[mesh.FaceID][]faceArc {
	adj := make(map[mesh.FaceID][]faceArc, d.FaceCount)
	for e := core.EdgeID(0); int(e) < len(d.EdgeFaces); e++ {
		lr := d.EdgeFaces[e]
		adj[lr[0]] = append(adj[lr[0]], faceArc{face: lr[1], edge: e})
		adj[lr[1]] = append(adj[lr[1]], faceArc{face: lr[0], edge: e})
	}
	return adj
}

func reconstruct(cameFrom map[mesh.FaceID]queueItem, sources []mesh.FaceID, target mesh.FaceID) []core.EdgeID {
	isSource := make(map[mesh.FaceID]bool, len(sources))
	for _, s := range sources {
		isSource[s] = true
	}

	var rev []core.EdgeID
	cur := target
	for !isSource[cur] {
		item := cameFrom[cur]
		rev = append(rev, item.viaEdge)
		cur = item.parent
	}
	out := make([]core.EdgeID, len(rev))
	for i, e := range rev {
		out[len(rev)-1-i] = e
	}
	return out
}
