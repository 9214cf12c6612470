package mesh

import (
	"errors"
	"sort"

	"github.com/khalidsaidi/topoloom/core"
)

// ErrInvalidRotation is returned when the rotation system does not place
// every edge id exactly twice (once per endpoint, twice for a self-loop).
var ErrInvalidRotation = errors.New("mesh: rotation system is not a valid embedding")

// FaceID identifies a face cycle by its index in discovery order.
type FaceID int

// HalfEdgeMesh is the frozen half-edge structure derived from a Graph and
// a RotationSystem.
type HalfEdgeMesh struct {
	Twin   []int
	Origin []core.VertexID
	Next   []int
	Face   []FaceID
	Faces  [][]int // face cycles, each a list of half-edge ids
	Outer  FaceID
}

// Build constructs the half-edge arrays and enumerates faces. It returns
// ErrInvalidRotation if rotation does not place every edge id exactly
// twice across the whole system.
func Build(g *core.Graph, rotation core.RotationSystem) (*HalfEdgeMesh, error) {
	m := g.EdgeCount()
	occurrences := make([]int, m)
	for _, lst := range rotation {
		for _, eid := range lst {
			occurrences[eid]++
		}
	}
	for _, c := range occurrences {
		if c != 2 {
			return nil, ErrInvalidRotation
		}
	}

	twin := make([]int, 2*m)
	origin := make([]core.VertexID, 2*m)
	for h := 0; h < 2*m; h += 2 {
		twin[h] = h + 1
		twin[h+1] = h
	}

	// Walk the rotation system once, assigning each occurrence of an edge
	// id to one of its two half-edges: the first occurrence seen (in
	// vertex-then-position order) claims the lower half-edge h, the
	// second claims h+1. For a non-loop edge the occurrence's vertex
	// tells us directly which endpoint it is; for a self-loop both
	// occurrences share a vertex, so order of discovery is what
	// disambiguates them.
	assigned := make([]bool, 2*m)
	rotHalf := make([][]int, g.VertexCount())
	for v, lst := range rotation {
		vid := core.VertexID(v)
		half := make([]int, len(lst))
		for i, eid := range lst {
			e, _ := g.Edge(eid)
			h := int(eid) * 2
			var chosen int
			switch {
			case e.IsLoop():
				if !assigned[h] {
					chosen = h
				} else {
					chosen = h + 1
				}
			case vid == e.U:
				chosen = h
			default:
				chosen = h + 1
			}
			origin[chosen] = vid
			assigned[chosen] = true
			half[i] = chosen
		}
		rotHalf[v] = half
	}

	pos := make(map[int]int, 2*m)
	for _, half := range rotHalf {
		for i, h := range half {
			pos[h] = i
		}
	}

	next := make([]int, 2*m)
	for h := 0; h < 2*m; h++ {
		t := twin[h]
		w := origin[t]
		lst := rotHalf[w]
		i := pos[t]
		nxt := lst[(i+1)%len(lst)]
		next[h] = nxt
	}

	face := make([]FaceID, 2*m)
	visited := make([]bool, 2*m)
	var faces [][]int
	for h := 0; h < 2*m; h++ {
		if visited[h] {
			continue
		}
		var cycle []int
		cur := h
		for {
			visited[cur] = true
			face[cur] = FaceID(len(faces))
			cycle = append(cycle, cur)
			cur = next[cur]
			if cur == h {
				break
			}
		}
		faces = append(faces, cycle)
	}

	hm := &HalfEdgeMesh{
		Twin:   twin,
		Origin: origin,
		Next:   next,
		Face:   face,
		Faces:  faces,
	}
	hm.Outer = selectOuterFace(hm)
	return hm, nil
}

// SelectOuterFace reapplies the outer-face rule to m and returns the
// chosen face. Build already stores the same answer in m.Outer; this
// exists for callers re-deriving it after manipulating face data.
func SelectOuterFace(m *HalfEdgeMesh) FaceID {
	return selectOuterFace(m)
}

// selectOuterFace picks the face with the longest boundary, breaking ties
// by the smallest minimum vertex id appearing on its boundary — the
// fallback rule for when no layout coordinates exist yet.
func selectOuterFace(hm *HalfEdgeMesh) FaceID {
	best := FaceID(0)
	bestLen := -1
	bestMinVertex := core.VertexID(1<<31 - 1)
	for fi, cycle := range hm.Faces {
		minV := core.VertexID(1<<31 - 1)
		for _, h := range cycle {
			if hm.Origin[h] < minV {
				minV = hm.Origin[h]
			}
		}
		switch {
		case len(cycle) > bestLen:
			best, bestLen, bestMinVertex = FaceID(fi), len(cycle), minV
		case len(cycle) == bestLen && minV < bestMinVertex:
			best, bestMinVertex = FaceID(fi), minV
		}
	}
	return best
}

// FacesIncidentTo returns, in face-id order, every face that has v as the
// origin of one of its boundary half-edges.
func (hm *HalfEdgeMesh) FacesIncidentTo(v core.VertexID) []FaceID {
	seen := make(map[FaceID]bool)
	var out []FaceID
	for h, o := range hm.Origin {
		if o != v {
			continue
		}
		f := hm.Face[h]
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
