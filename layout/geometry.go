package layout

import (
	"math"

	"github.com/khalidsaidi/topoloom/core"
)

// segmentsCross reports whether the open segments (a1,a2) and (b1,b2)
// properly intersect. Touching at a shared endpoint does not count.
func segmentsCross(a1, a2, b1, b2 Point) bool {
	if samePoint(a1, b1) || samePoint(a1, b2) || samePoint(a2, b1) || samePoint(a2, b2) {
		return false
	}
	d1 := orient(b1, b2, a1)
	d2 := orient(b1, b2, a2)
	d3 := orient(a1, a2, b1)
	d4 := orient(a1, a2, b2)
	return d1*d2 < 0 && d3*d4 < 0
}

func samePoint(p, q Point) bool {
	const eps = 1e-9
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// orient returns the sign of the cross product (b-a) x (c-a): positive
// for a left turn, negative for a right turn, zero for collinear.
func orient(a, b, c Point) float64 {
	v := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case v > 1e-12:
		return 1
	case v < -1e-12:
		return -1
	}
	return 0
}

// countCrossings counts proper pairwise intersections between the
// segments of distinct edge paths. Segments of the same edge never count
// against each other; shared endpoints are excluded by segmentsCross.
func countCrossings(paths []EdgePath) int {
	type seg struct {
		edge core.EdgeID
		a, b Point
	}
	var segs []seg
	for _, p := range paths {
		for i := 0; i+1 < len(p.Points); i++ {
			segs = append(segs, seg{edge: p.Edge, a: p.Points[i], b: p.Points[i+1]})
		}
	}
	count := 0
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if segs[i].edge == segs[j].edge {
				continue
			}
			if segmentsCross(segs[i].a, segs[i].b, segs[j].a, segs[j].b) {
				count++
			}
		}
	}
	return count
}

// polygonArea returns the absolute shoelace area of the polygon.
func polygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var s float64
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return math.Abs(s) / 2
}

// boundingBoxArea returns the area of the axis-aligned bounding box of
// all points in the paths and positions.
func boundingBoxArea(positions map[core.VertexID]Point, paths []EdgePath) float64 {
	first := true
	var minX, maxX, minY, maxY float64
	visit := func(p Point) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range positions {
		visit(p)
	}
	for _, ep := range paths {
		for _, p := range ep.Points {
			visit(p)
		}
	}
	if first {
		return 0
	}
	return (maxX - minX) * (maxY - minY)
}
