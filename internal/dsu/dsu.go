// Package dsu implements a disjoint-set union (union-find) structure
// with path compression and union by rank, over a dense integer domain.
// It is shared by spqr (merging split-pair components) and layout (a
// fast pre-filter before the full planarity re-check in the
// planarization pipeline's incremental maximal-planar-subgraph
// construction).
package dsu

// DSU is a disjoint-set-union over the dense integer domain [0, n).
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU with n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	d := &DSU{parent: make([]int, n), rank: make([]int, n)}
	for i := range d.parent {
		d.parent[i] = i
	}
	return d
}

// Find returns the representative of x's set, compressing the path as it
// walks up.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. It reports true if x and y were
// previously in different sets (and thus were actually merged).
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}
