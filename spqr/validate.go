package spqr

import (
	"fmt"
	"sort"

	"github.com/khalidsaidi/topoloom/core"
)

// Report is the outcome of Validate: Ok is true when every structural
// invariant holds; Problems lists each violation found.
type Report struct {
	Ok       bool
	Problems []string
}

// Validate checks the structural invariants of an SPQR tree:
//
//  1. P skeletons have exactly two vertices and at least three edges.
//  2. S skeletons are simple closed cycles.
//  3. R skeletons are simple with no non-adjacent split pair.
//  4. Virtual edges are matched one-to-one across adjacent nodes, with
//     consistent endpoints on both sides.
//  5. The tree is in fact a tree (connected, #pairs = #nodes - 1), and
//     replacing every matched virtual pair by gluing its two skeletons
//     reproduces the decomposed graph: every real edge appears in
//     exactly one skeleton with its original endpoints, and all of the
//     graph's edges are covered.
func Validate(t *Tree) *Report {
	r := &Report{}
	flag := func(format string, args ...interface{}) {
		r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
	}

	pairSides := map[int][]pairSide{}
	realSeen := map[core.EdgeID]int{}

	for _, n := range t.Nodes {
		sk := &n.Skeleton
		switch n.Kind {
		case ParallelNode:
			if len(sk.VertexMap) != 2 {
				flag("P node %d has %d vertices, want 2", n.ID, len(sk.VertexMap))
			}
			if len(sk.Edges) < 3 {
				flag("P node %d has %d edges, want >= 3", n.ID, len(sk.Edges))
			}
			for _, se := range sk.Edges {
				if se.U == se.V {
					flag("P node %d has a self-loop", n.ID)
				}
			}
		case SeriesNode:
			if !isSimpleCycle(sk) {
				flag("S node %d skeleton is not a simple cycle", n.ID)
			}
		case RigidNode:
			if dup := duplicatePair(sk); dup {
				flag("R node %d skeleton is not simple", n.ID)
			}
			if a, b, found := skelSplitPair(sk); found {
				flag("R node %d has split pair {%d,%d}", n.ID, a, b)
			}
		case EdgeNode:
			if len(sk.Edges) != 1 || sk.Edges[0].IsVirtual {
				flag("Q node %d must hold exactly one real edge", n.ID)
			}
		}

		for i, se := range sk.Edges {
			if se.U < 0 || se.U >= len(sk.VertexMap) || se.V < 0 || se.V >= len(sk.VertexMap) {
				flag("node %d edge %d references a vertex outside the skeleton", n.ID, i)
				continue
			}
			if se.IsVirtual {
				pairSides[se.Pair] = append(pairSides[se.Pair], pairSide{node: n.ID, edgeIdx: i})
			} else {
				realSeen[se.Real]++
				e, ok := t.graph.Edge(se.Real)
				if !ok {
					flag("node %d references unknown edge %d", n.ID, se.Real)
					continue
				}
				a, b := sk.VertexMap[se.U], sk.VertexMap[se.V]
				if !(a == e.U && b == e.V) && !(a == e.V && b == e.U) {
					flag("node %d stores edge %d with endpoints {%d,%d}, graph has {%d,%d}",
						n.ID, se.Real, a, b, e.U, e.V)
				}
			}
		}
	}

	// Virtual pairing: exactly two sides per pair, in distinct adjacent
	// nodes, over the same original endpoints.
	for pair, sides := range pairSides {
		if len(sides) != 2 {
			flag("virtual pair %d has %d sides, want 2", pair, len(sides))
			continue
		}
		a, b := sides[0], sides[1]
		if a.node == b.node {
			flag("virtual pair %d pairs node %d with itself", pair, a.node)
			continue
		}
		ea := t.Nodes[a.node].Skeleton.Edges[a.edgeIdx]
		eb := t.Nodes[b.node].Skeleton.Edges[b.edgeIdx]
		if ea.TwinNode != b.node || eb.TwinNode != a.node {
			flag("virtual pair %d has inconsistent twin references", pair)
		}
		au, av := endpoints(&t.Nodes[a.node].Skeleton, ea)
		bu, bv := endpoints(&t.Nodes[b.node].Skeleton, eb)
		if !(au == bu && av == bv) {
			flag("virtual pair %d joins {%d,%d} on one side, {%d,%d} on the other",
				pair, au, av, bu, bv)
		}
	}

	// Tree shape: connected with #pairs = #nodes - 1.
	if len(pairSides) != len(t.Nodes)-1 {
		flag("tree has %d nodes but %d virtual pairs", len(t.Nodes), len(pairSides))
	} else if len(t.Nodes) > 1 && !treeConnected(t) {
		flag("tree is not connected")
	}

	// Re-expansion: every real edge exactly once, and complete coverage
	// of the decomposed edge set.
	covered := make([]core.EdgeID, 0, len(realSeen))
	for eid, c := range realSeen {
		if c != 1 {
			flag("real edge %d appears in %d skeletons, want 1", eid, c)
		}
		covered = append(covered, eid)
	}
	sort.Slice(covered, func(i, j int) bool { return covered[i] < covered[j] })
	if len(covered) != t.graph.EdgeCount() {
		flag("tree covers %d of %d edges", len(covered), t.graph.EdgeCount())
	}

	r.Ok = len(r.Problems) == 0
	return r
}

// endpoints returns a skeleton edge's original endpoints with the
// smaller vertex first.
func endpoints(sk *Skeleton, se SkelEdge) (core.VertexID, core.VertexID) {
	a, b := sk.VertexMap[se.U], sk.VertexMap[se.V]
	if a > b {
		a, b = b, a
	}
	return a, b
}

// isSimpleCycle reports whether the skeleton is one closed cycle: every
// vertex of degree exactly 2, connected, edge count equal to vertex
// count.
func isSimpleCycle(sk *Skeleton) bool {
	if len(sk.Edges) != len(sk.VertexMap) || len(sk.Edges) < 2 {
		return false
	}
	deg := make([]int, len(sk.VertexMap))
	for _, se := range sk.Edges {
		if se.U == se.V {
			return false
		}
		deg[se.U]++
		deg[se.V]++
	}
	for _, d := range deg {
		if d != 2 {
			return false
		}
	}
	// Degree-2 everywhere with |E| == |V| means one cycle iff connected.
	adj := make([][]int, len(sk.VertexMap))
	for _, se := range sk.Edges {
		adj[se.U] = append(adj[se.U], se.V)
		adj[se.V] = append(adj[se.V], se.U)
	}
	seen := make([]bool, len(sk.VertexMap))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range adj[v] {
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == len(sk.VertexMap)
}

// duplicatePair reports whether two skeleton edges share an unordered
// endpoint pair, or any edge is a self-loop.
func duplicatePair(sk *Skeleton) bool {
	seen := map[[2]int]bool{}
	for _, se := range sk.Edges {
		if se.U == se.V {
			return true
		}
		k := [2]int{se.U, se.V}
		if k[0] > k[1] {
			k[0], k[1] = k[1], k[0]
		}
		if seen[k] {
			return true
		}
		seen[k] = true
	}
	return false
}

// skelSplitPair looks for a non-adjacent split pair inside a skeleton,
// using the same notion the decomposition uses.
func skelSplitPair(sk *Skeleton) (int, int, bool) {
	edges := make([]workEdge, len(sk.Edges))
	for i, se := range sk.Edges {
		edges[i] = workEdge{u: core.VertexID(se.U), v: core.VertexID(se.V), real: -1, pair: -1}
	}
	a, b, ok := findSplitPair(edges)
	return int(a), int(b), ok
}

// treeConnected walks the neighbor lists from node 0.
func treeConnected(t *Tree) bool {
	seen := make([]bool, len(t.Nodes))
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range t.Nodes[v].Neighbors {
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	return count == len(t.Nodes)
}
