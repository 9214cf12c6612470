package layout

import (
	"math"
	"sort"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/matrix"
	"github.com/khalidsaidi/topoloom/mesh"
)

// selfLoopSide is the side length of the small quadrilateral route drawn
// for a self-loop.
const selfLoopSide = 0.25

// componentGap is the horizontal spacing between side-by-side components.
const componentGap = 3.0

// PlanarStraightLine draws g with straight segments, using the embedding
// captured by m: each connected component's outer boundary is pinned to a
// regular convex polygon and the interior is placed by solving the Tutte
// barycentric system (one linear solve per axis) over the adjacency,
// combinatorially fan-triangulated so faces cannot collapse. Components
// are drawn side by side.
//
// The returned stats report zero bends, the total pinned outer-polygon
// area, and the crossings actually counted in the drawing, which is zero
// whenever the rotation behind m was a planar embedding.
func PlanarStraightLine(g *core.Graph, m *mesh.HalfEdgeMesh) (*Result, error) {
	positions := make(map[core.VertexID]Point, g.VertexCount())
	comps := components(g)

	cursor := 0.0
	var outerArea float64
	for _, comp := range comps {
		pos, area, err := placeComponent(g, m, comp)
		if err != nil {
			return nil, err
		}
		outerArea += area
		// Shift the component to start at the cursor.
		minX, maxX := math.Inf(1), math.Inf(-1)
		minY := math.Inf(1)
		for _, p := range pos {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
			minY = math.Min(minY, p.Y)
		}
		for v, p := range pos {
			positions[v] = Point{X: p.X - minX + cursor, Y: p.Y - minY}
		}
		cursor += maxX - minX + componentGap
	}

	paths := straightPaths(g, positions)
	return &Result{
		Positions: positions,
		EdgePaths: paths,
		Stats: Stats{
			Bends:     0,
			Area:      outerArea,
			Crossings: countCrossings(paths),
		},
	}, nil
}

// straightPaths emits one polyline per edge in id order: a segment for a
// plain edge, a small quadrilateral for a self-loop.
func straightPaths(g *core.Graph, positions map[core.VertexID]Point) []EdgePath {
	paths := make([]EdgePath, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.IsLoop() {
			p := positions[e.U]
			d := selfLoopSide
			paths = append(paths, EdgePath{Edge: e.ID, Points: []Point{
				p,
				{X: p.X + d, Y: p.Y},
				{X: p.X + d, Y: p.Y + d},
				{X: p.X, Y: p.Y + d},
				p,
			}})
			continue
		}
		paths = append(paths, EdgePath{Edge: e.ID, Points: []Point{positions[e.U], positions[e.V]}})
	}
	return paths
}

// components returns the connected components of g, each a sorted vertex
// list, ordered by smallest member.
func components(g *core.Graph) [][]core.VertexID {
	n := g.VertexCount()
	seen := make([]bool, n)
	var comps [][]core.VertexID
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		var comp []core.VertexID
		stack := []core.VertexID{core.VertexID(s)}
		seen[s] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, eid := range g.Adjacency(v) {
				e, _ := g.Edge(eid)
				w := e.Other(v)
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		comps = append(comps, comp)
	}
	return comps
}

// placeComponent positions one component around its own outer polygon,
// returning local (unshifted) coordinates and the polygon's area.
func placeComponent(g *core.Graph, m *mesh.HalfEdgeMesh, comp []core.VertexID) (map[core.VertexID]Point, float64, error) {
	pos := make(map[core.VertexID]Point, len(comp))
	if len(comp) == 1 && g.Degree(comp[0]) == 0 {
		pos[comp[0]] = Point{}
		return pos, 0, nil
	}

	inComp := make(map[core.VertexID]bool, len(comp))
	for _, v := range comp {
		inComp[v] = true
	}
	outer := componentOuterFace(m, inComp)
	boundary := faceVertices(m, outer)

	// Pin the boundary to a regular polygon with radius proportional to
	// its length.
	k := len(boundary)
	r := math.Max(1, float64(k))
	onBoundary := make(map[core.VertexID]bool, k)
	for i, v := range boundary {
		theta := math.Pi/2 + 2*math.Pi*float64(i)/float64(k)
		pos[v] = Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
		onBoundary[v] = true
	}
	outerPoly := make([]Point, 0, k)
	for _, v := range boundary {
		outerPoly = append(outerPoly, pos[v])
	}
	area := polygonArea(outerPoly)

	var interior []core.VertexID
	for _, v := range comp {
		if !onBoundary[v] {
			interior = append(interior, v)
		}
	}
	if len(interior) == 0 {
		return pos, area, nil
	}

	neigh := solveAdjacency(g, m, inComp, outer)
	if err := solveTutte(neigh, interior, pos); err != nil {
		return nil, 0, err
	}
	return pos, area, nil
}

// componentOuterFace picks the face of m lying inside the component with
// the longest boundary, ties broken by smallest minimum vertex id, the
// same rule the mesh uses globally.
func componentOuterFace(m *mesh.HalfEdgeMesh, inComp map[core.VertexID]bool) mesh.FaceID {
	best := mesh.FaceID(-1)
	bestLen := -1
	bestMin := core.VertexID(math.MaxInt32)
	for fi, cycle := range m.Faces {
		if len(cycle) == 0 || !inComp[m.Origin[cycle[0]]] {
			continue
		}
		minV := core.VertexID(math.MaxInt32)
		for _, h := range cycle {
			if m.Origin[h] < minV {
				minV = m.Origin[h]
			}
		}
		switch {
		case len(cycle) > bestLen:
			best, bestLen, bestMin = mesh.FaceID(fi), len(cycle), minV
		case len(cycle) == bestLen && minV < bestMin:
			best, bestMin = mesh.FaceID(fi), minV
		}
	}
	return best
}

// faceVertices walks a face cycle and returns its vertices in boundary
// order, keeping only the first occurrence of each.
func faceVertices(m *mesh.HalfEdgeMesh, f mesh.FaceID) []core.VertexID {
	seen := map[core.VertexID]bool{}
	var out []core.VertexID
	for _, h := range m.Faces[f] {
		v := m.Origin[h]
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// solveAdjacency builds the neighbor multiset the barycentric solve uses:
// the component's real adjacency plus fan diagonals triangulating every
// internal face, so large faces cannot collapse onto a line.
func solveAdjacency(g *core.Graph, m *mesh.HalfEdgeMesh, inComp map[core.VertexID]bool, outer mesh.FaceID) map[core.VertexID][]core.VertexID {
	neigh := make(map[core.VertexID][]core.VertexID)
	have := map[[2]core.VertexID]bool{}
	add := func(u, v core.VertexID) {
		neigh[u] = append(neigh[u], v)
		neigh[v] = append(neigh[v], u)
	}
	for _, e := range g.Edges() {
		if e.IsLoop() || !inComp[e.U] {
			continue
		}
		add(e.U, e.V)
		k := pairKey(e.U, e.V)
		have[k] = true
	}
	for fi, cycle := range m.Faces {
		if mesh.FaceID(fi) == outer || len(cycle) == 0 || !inComp[m.Origin[cycle[0]]] {
			continue
		}
		vs := faceVertices(m, mesh.FaceID(fi))
		if len(vs) <= 3 {
			continue
		}
		// Fan from the smallest boundary vertex.
		apexIdx := 0
		for i, v := range vs {
			if v < vs[apexIdx] {
				apexIdx = i
			}
		}
		apex := vs[apexIdx]
		for off := 2; off < len(vs)-1; off++ {
			v := vs[(apexIdx+off)%len(vs)]
			k := pairKey(apex, v)
			if apex != v && !have[k] {
				have[k] = true
				add(apex, v)
			}
		}
	}
	return neigh
}

func pairKey(u, v core.VertexID) [2]core.VertexID {
	if u <= v {
		return [2]core.VertexID{u, v}
	}
	return [2]core.VertexID{v, u}
}

// solveTutte solves x_v = mean(x_neighbors) for the interior vertices,
// one LU-factored solve per axis, writing results into pos.
func solveTutte(neigh map[core.VertexID][]core.VertexID, interior []core.VertexID, pos map[core.VertexID]Point) error {
	n := len(interior)
	idx := make(map[core.VertexID]int, n)
	for i, v := range interior {
		idx[v] = i
	}
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return &LayoutError{Kind: KindInternal, Err: err}
	}
	bx := make([]float64, n)
	by := make([]float64, n)
	for i, v := range interior {
		deg := len(neigh[v])
		if err := a.Set(i, i, float64(deg)); err != nil {
			return &LayoutError{Kind: KindInternal, Err: err}
		}
		for _, w := range neigh[v] {
			if j, ok := idx[w]; ok {
				cur, _ := a.At(i, j)
				if err := a.Set(i, j, cur-1); err != nil {
					return &LayoutError{Kind: KindInternal, Err: err}
				}
			} else {
				bx[i] += pos[w].X
				by[i] += pos[w].Y
			}
		}
	}
	f, err := matrix.LU(a)
	if err != nil {
		return &LayoutError{Kind: KindInternal, Err: err}
	}
	xs, err := f.Solve(bx)
	if err != nil {
		return &LayoutError{Kind: KindInternal, Err: err}
	}
	ys, err := f.Solve(by)
	if err != nil {
		return &LayoutError{Kind: KindInternal, Err: err}
	}
	for i, v := range interior {
		pos[v] = Point{X: xs[i], Y: ys[i]}
	}
	return nil
}
