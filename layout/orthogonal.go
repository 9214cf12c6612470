package layout

import (
	"math"
	"sort"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/flow"
	"github.com/khalidsaidi/topoloom/mesh"
)

// port directions, clockwise from north.
const (
	portN = iota
	portE
	portS
	portW
)

// OrthogonalLayout draws g on an integer grid with axis-aligned edges:
// vertices take the rank of their straight-line coordinate per axis, each
// incident edge is assigned a cardinal port in rotation order (vertices
// of degree above four share ports), bend counts are estimated by the
// face-angle min-cost flow, and each edge is routed port-to-port as a
// straight segment or a single L.
//
// The bend stat comes from the face-angle flow; when that flow is
// infeasible (which the canonical fixed-angle assignments make common)
// the bend count falls back to zero rather than failing the drawing.
func OrthogonalLayout(g *core.Graph, m *mesh.HalfEdgeMesh) (*Result, error) {
	straight, err := PlanarStraightLine(g, m)
	if err != nil {
		return nil, err
	}
	grid := snapToGrid(straight.Positions)
	ports := assignPorts(g, m)

	bends, err := bendCounts(g, m)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, b := range bends {
		total += b
	}

	paths := routeOrthogonal(g, grid, ports)
	return &Result{
		Positions: grid,
		EdgePaths: paths,
		Stats: Stats{
			Bends:     total,
			Area:      boundingBoxArea(grid, paths),
			Crossings: 0,
		},
	}, nil
}

// snapToGrid replaces each coordinate with the rank of its value on that
// axis, producing compact integer-valued positions.
func snapToGrid(positions map[core.VertexID]Point) map[core.VertexID]Point {
	rank := func(pick func(Point) float64) map[float64]int {
		var vals []float64
		seen := map[float64]bool{}
		for _, p := range positions {
			v := pick(p)
			if !seen[v] {
				seen[v] = true
				vals = append(vals, v)
			}
		}
		sort.Float64s(vals)
		out := make(map[float64]int, len(vals))
		for i, v := range vals {
			out[v] = i
		}
		return out
	}
	xr := rank(func(p Point) float64 { return p.X })
	yr := rank(func(p Point) float64 { return p.Y })
	grid := make(map[core.VertexID]Point, len(positions))
	for v, p := range positions {
		grid[v] = Point{X: float64(xr[p.X]), Y: float64(yr[p.Y])}
	}
	return grid
}

// portsOf maps each (edge, endpoint-is-U) incidence to a cardinal port.
type portsOf map[portKey]int

type portKey struct {
	edge core.EdgeID
	atU  bool
}

// assignPorts walks each vertex's rotation (recovered from the mesh via
// next∘twin) from its smallest incident half-edge and deals the cardinal
// directions out in order. Degree above four spreads extra incidences
// evenly along the four ports.
func assignPorts(g *core.Graph, m *mesh.HalfEdgeMesh) portsOf {
	ports := make(portsOf, 2*g.EdgeCount())
	// Smallest half-edge per origin vertex.
	first := map[core.VertexID]int{}
	for h := 0; h < len(m.Origin); h++ {
		v := m.Origin[h]
		if cur, ok := first[v]; !ok || h < cur {
			first[v] = h
		}
	}
	for v, start := range first {
		deg := 0
		for h := 0; h < len(m.Origin); h++ {
			if m.Origin[h] == v {
				deg++
			}
		}
		h := start
		for i := 0; i < deg; i++ {
			eid := core.EdgeID(h / 2)
			e, _ := g.Edge(eid)
			key := portKey{edge: eid, atU: h%2 == 0}
			if e.IsLoop() {
				// Both sides of a loop leave by the port of its first
				// incidence.
				key = portKey{edge: eid, atU: true}
			}
			ports[key] = i * 4 / deg
			h = m.Next[m.Twin[h]]
		}
	}
	return ports
}

// routeOrthogonal emits one axis-aligned polyline per edge in id order:
// straight when the endpoints align, otherwise an L whose first segment
// leaves the U endpoint through its assigned port (vertical ports bend
// at (x_u, y_v), horizontal ones at (x_v, y_u)). Self-loops take a unit
// quadrilateral.
func routeOrthogonal(g *core.Graph, grid map[core.VertexID]Point, ports portsOf) []EdgePath {
	paths := make([]EdgePath, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.IsLoop() {
			p := grid[e.U]
			paths = append(paths, EdgePath{Edge: e.ID, Points: []Point{
				p,
				{X: p.X + 1, Y: p.Y},
				{X: p.X + 1, Y: p.Y + 1},
				{X: p.X, Y: p.Y + 1},
				p,
			}})
			continue
		}
		pu, pv := grid[e.U], grid[e.V]
		if pu.X == pv.X || pu.Y == pv.Y {
			paths = append(paths, EdgePath{Edge: e.ID, Points: []Point{pu, pv}})
			continue
		}
		var corner Point
		switch ports[portKey{edge: e.ID, atU: true}] {
		case portN, portS:
			corner = Point{X: pu.X, Y: pv.Y}
		default:
			corner = Point{X: pv.X, Y: pu.Y}
		}
		paths = append(paths, EdgePath{Edge: e.ID, Points: []Point{pu, corner, pv}})
	}
	return paths
}

// bendCounts runs the face-angle min-cost flow: every non-outer face
// demands four quarter turns (the outer face minus four), reduced by the
// canonical angle each vertex corner contributes: degree 1 gives its
// face all four, degree 2 gives two and two, degree 3 gives two to its
// smallest face and one elsewhere, degree 4 and above give one each.
// Each unit of flow between two faces is one bend on a shared edge.
//
// Infeasibility (common under the fixed assignments, and guaranteed for
// vertices of degree five and up) falls back to zero bends per edge.
func bendCounts(g *core.Graph, m *mesh.HalfEdgeMesh) ([]int, error) {
	counts := make([]int, g.EdgeCount())
	if len(m.Faces) == 0 || g.EdgeCount() == 0 {
		return counts, nil
	}

	demands := make([]int64, len(m.Faces))
	for f := range demands {
		if mesh.FaceID(f) == m.Outer {
			demands[f] = -4
		} else {
			demands[f] = 4
		}
	}
	// Corner faces per vertex, in half-edge order.
	cornersByVertex := make(map[core.VertexID][]mesh.FaceID)
	for h := 0; h < len(m.Origin); h++ {
		v := m.Origin[h]
		cornersByVertex[v] = append(cornersByVertex[v], m.Face[h])
	}
	for _, corners := range cornersByVertex {
		angles := canonicalAngles(corners)
		for i, f := range corners {
			demands[f] -= angles[i]
		}
	}

	type arcPair struct{ fwd, rev int }
	arcIdx := make(map[core.EdgeID]arcPair)
	var arcs []flow.Arc
	for _, e := range g.Edges() {
		if e.IsLoop() {
			continue
		}
		l := m.Face[int(e.ID)*2]
		r := m.Face[m.Twin[int(e.ID)*2]]
		if l == r {
			continue
		}
		arcIdx[e.ID] = arcPair{fwd: len(arcs), rev: len(arcs) + 1}
		arcs = append(arcs,
			flow.Arc{From: int(l), To: int(r), Upper: math.MaxInt32, Cost: 1},
			flow.Arc{From: int(r), To: int(l), Upper: math.MaxInt32, Cost: 1},
		)
	}

	res, err := flow.MinCostFlow(&flow.Problem{
		NodeCount: len(m.Faces),
		Arcs:      arcs,
		Demands:   demands,
	})
	if err != nil {
		return nil, &LayoutError{Kind: KindFlowInfeasible, Err: err}
	}
	if !res.Feasible {
		return counts, nil
	}
	for eid, pair := range arcIdx {
		counts[eid] = int(res.FlowByArc[pair.fwd] + res.FlowByArc[pair.rev])
	}
	return counts, nil
}

// canonicalAngles distributes a vertex's four quarter turns over its
// corners: [4], [2 2], [2 1 1] (the 2 on the smallest face id), or all
// ones.
func canonicalAngles(corners []mesh.FaceID) []int64 {
	n := len(corners)
	out := make([]int64, n)
	switch n {
	case 1:
		out[0] = 4
	case 2:
		out[0], out[1] = 2, 2
	case 3:
		small := 0
		for i := 1; i < n; i++ {
			if corners[i] < corners[small] {
				small = i
			}
		}
		for i := range out {
			out[i] = 1
		}
		out[small] = 2
	default:
		for i := range out {
			out[i] = 1
		}
	}
	return out
}
