package spqr

import (
	"fmt"
	"sort"

	"github.com/khalidsaidi/topoloom/bcc"
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/internal/dsu"
)

// Option configures the decomposition entry points.
type Option func(*options)

type options struct {
	forceUndirected bool
}

// WithForceUndirected makes the decomposition accept directed edges by
// projecting them onto their undirected endpoints. Without it, directed
// input is rejected with ErrUnsupportedInput.
func WithForceUndirected(v bool) Option {
	return func(o *options) { o.forceUndirected = v }
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Decompose computes the SPQR tree of a biconnected graph: S nodes for
// cycles, P nodes for parallel bundles, R nodes for skeletons with no
// non-adjacent split pair, Q nodes for single real edges. Virtual edges
// pair matched nodes across the tree.
//
// A split pair here is a non-adjacent vertex pair whose removal
// disconnects the component; a pair joined by edges only ever induces a
// P node, through its parallel bundle. Splitting always removes whole
// components at once, so the emitted skeletons are maximal.
//
// Complexity: O(V^2 * E) per split-pair search, polynomial overall.
func Decompose(g *core.Graph, opts ...Option) (*Tree, error) {
	o := newOptions(opts)
	if err := checkInput(g, o); err != nil {
		return nil, err
	}
	if !isBiconnected(g) {
		return nil, ErrNotBiconnected
	}

	edges := make([]workEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, workEdge{u: e.U, v: e.V, real: e.ID, pair: -1})
	}
	d := &decomposer{g: g, pairReg: make(map[int][]pairSide)}
	root := d.decompose(edges)
	d.wirePairs()
	return &Tree{Nodes: d.nodes, Root: root, graph: g}, nil
}

// DecomposeAll decomposes every block of an arbitrary (not necessarily
// biconnected) graph, returning one tree per block plus the articulation
// vertices gluing them together. Blocks are processed in the order bcc
// emits them.
func DecomposeAll(g *core.Graph, opts ...Option) (*Forest, error) {
	o := newOptions(opts)
	if err := checkInput(g, o); err != nil {
		return nil, err
	}
	r := bcc.Compute(g, bcc.WithForceUndirected(o.forceUndirected))
	f := &Forest{Articulation: r.Articulation}
	for _, block := range r.Blocks {
		edges := make([]workEdge, 0, len(block))
		for _, eid := range block {
			e, _ := g.Edge(eid)
			edges = append(edges, workEdge{u: e.U, v: e.V, real: e.ID, pair: -1})
		}
		d := &decomposer{g: g, pairReg: make(map[int][]pairSide)}
		root := d.decompose(edges)
		d.wirePairs()
		f.Trees = append(f.Trees, &Tree{Nodes: d.nodes, Root: root, graph: g})
	}
	return f, nil
}

// DecomposeSafe decomposes only the largest block (ties broken by block
// emission order) and reports what was skipped in the note.
func DecomposeSafe(g *core.Graph, opts ...Option) (*SafeResult, error) {
	o := newOptions(opts)
	if err := checkInput(g, o); err != nil {
		return nil, err
	}
	r := bcc.Compute(g, bcc.WithForceUndirected(o.forceUndirected))
	if len(r.Blocks) == 0 {
		return nil, fmt.Errorf("%w: graph has no edges", ErrNotBiconnected)
	}
	best := 0
	for i, b := range r.Blocks {
		if len(b) > len(r.Blocks[best]) {
			best = i
		}
	}
	edges := make([]workEdge, 0, len(r.Blocks[best]))
	for _, eid := range r.Blocks[best] {
		e, _ := g.Edge(eid)
		edges = append(edges, workEdge{u: e.U, v: e.V, real: e.ID, pair: -1})
	}
	d := &decomposer{g: g, pairReg: make(map[int][]pairSide)}
	root := d.decompose(edges)
	d.wirePairs()
	note := fmt.Sprintf("decomposed largest block (%d of %d edges); skipped %d other block(s)",
		len(r.Blocks[best]), g.EdgeCount(), len(r.Blocks)-1)
	return &SafeResult{
		Tree: &Tree{Nodes: d.nodes, Root: root, graph: g},
		Note: note,
	}, nil
}

func checkInput(g *core.Graph, o options) error {
	if g.HasDirectedEdges() && !o.forceUndirected {
		return fmt.Errorf("%w: directed edges (set WithForceUndirected)", ErrUnsupportedInput)
	}
	if g.HasSelfLoops() {
		return fmt.Errorf("%w: self-loops", ErrUnsupportedInput)
	}
	return nil
}

// isBiconnected reports whether g is connected with a single block
// covering every edge and every vertex.
func isBiconnected(g *core.Graph) bool {
	n := g.VertexCount()
	if n == 0 || g.EdgeCount() == 0 {
		return false
	}
	// Connectivity.
	seen := make([]bool, n)
	stack := []core.VertexID{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, eid := range g.Adjacency(v) {
			e, _ := g.Edge(eid)
			w := e.Other(v)
			if !seen[w] {
				seen[w] = true
				count++
				stack = append(stack, w)
			}
		}
	}
	if count != n {
		return false
	}
	r := bcc.Compute(g)
	return len(r.Blocks) == 1 && len(r.Blocks[0]) == g.EdgeCount()
}

// workEdge is one edge of a component under decomposition: either a real
// edge of the source graph or a virtual edge identified by its pair id.
type workEdge struct {
	u, v core.VertexID
	real core.EdgeID // -1 when virtual
	pair int         // -1 when real
}

func (w workEdge) isVirtual() bool { return w.pair >= 0 }

// pairKey returns the unordered endpoint pair with the smaller vertex
// first.
func (w workEdge) pairKey() [2]core.VertexID {
	if w.u <= w.v {
		return [2]core.VertexID{w.u, w.v}
	}
	return [2]core.VertexID{w.v, w.u}
}

type pairSide struct {
	node    int
	edgeIdx int
}

type decomposer struct {
	g        *core.Graph
	nodes    []Node
	nextPair int
	pairReg  map[int][]pairSide
}

func (d *decomposer) newPair() int {
	p := d.nextPair
	d.nextPair++
	return p
}

// addNode freezes a component into a tree node, building the skeleton's
// local vertex map (original vertices in ascending order) and registering
// the node's virtual edges with the pair registry.
func (d *decomposer) addNode(kind NodeKind, edges []workEdge) int {
	vset := map[core.VertexID]bool{}
	for _, e := range edges {
		vset[e.u] = true
		vset[e.v] = true
	}
	vm := make([]core.VertexID, 0, len(vset))
	for v := range vset {
		vm = append(vm, v)
	}
	sort.Slice(vm, func(i, j int) bool { return vm[i] < vm[j] })
	local := make(map[core.VertexID]int, len(vm))
	for i, v := range vm {
		local[v] = i
	}

	id := len(d.nodes)
	sk := Skeleton{VertexMap: vm, Edges: make([]SkelEdge, len(edges))}
	for i, e := range edges {
		se := SkelEdge{U: local[e.u], V: local[e.v]}
		if e.isVirtual() {
			se.IsVirtual = true
			se.Pair = e.pair
			se.TwinNode = -1 // wired after the recursion finishes
			d.pairReg[e.pair] = append(d.pairReg[e.pair], pairSide{node: id, edgeIdx: i})
		} else {
			se.Real = e.real
		}
		sk.Edges[i] = se
	}
	d.nodes = append(d.nodes, Node{ID: id, Kind: kind, Skeleton: sk})
	return id
}

// wirePairs fills TwinNode on every virtual edge and the per-node
// neighbor lists once all nodes exist.
func (d *decomposer) wirePairs() {
	neighbors := make(map[int]map[int]bool, len(d.nodes))
	for _, sides := range d.pairReg {
		if len(sides) != 2 {
			continue // impossible by construction; Validate would flag it
		}
		a, b := sides[0], sides[1]
		d.nodes[a.node].Skeleton.Edges[a.edgeIdx].TwinNode = b.node
		d.nodes[b.node].Skeleton.Edges[b.edgeIdx].TwinNode = a.node
		if neighbors[a.node] == nil {
			neighbors[a.node] = map[int]bool{}
		}
		if neighbors[b.node] == nil {
			neighbors[b.node] = map[int]bool{}
		}
		neighbors[a.node][b.node] = true
		neighbors[b.node][a.node] = true
	}
	for id := range d.nodes {
		ns := make([]int, 0, len(neighbors[id]))
		for n := range neighbors[id] {
			ns = append(ns, n)
		}
		sort.Ints(ns)
		d.nodes[id].Neighbors = ns
	}
}

// decompose recursively classifies and splits one component, returning
// the id of the tree node that represents it (for a split component, the
// first child produced).
func (d *decomposer) decompose(edges []workEdge) int {
	// Single real edge: a Q node.
	if len(edges) == 1 && !edges[0].isVirtual() {
		return d.addNode(EdgeNode, edges)
	}

	// One bundle: every edge between the same pair.
	if samePair(edges) {
		if len(edges) >= 3 {
			return d.addNode(ParallelNode, sortBundle(edges))
		}
		// A 2-gon; the degenerate cycle a multigraph can produce.
		return d.addNode(SeriesNode, sortBundle(edges))
	}

	// Extract a parallel bundle: a pair with >= 2 edges but not all of
	// them. The bundle becomes a P node; the rest continues with a
	// virtual edge standing in for the bundle.
	if a, b, ok := findBundle(edges); ok {
		var bundle, rest []workEdge
		for _, e := range edges {
			k := e.pairKey()
			if k[0] == a && k[1] == b {
				bundle = append(bundle, e)
			} else {
				rest = append(rest, e)
			}
		}
		p := d.newPair()
		skel := append(sortBundle(bundle), workEdge{u: a, v: b, real: -1, pair: p})
		id := d.addNode(ParallelNode, skel)
		d.decompose(append(rest, workEdge{u: a, v: b, real: -1, pair: p}))
		return id
	}

	// Simple component now. A cycle is an S node.
	if cyc, ok := asCycle(edges); ok {
		return d.addNode(SeriesNode, cyc)
	}

	// Find the smallest non-adjacent split pair.
	a, b, ok := findSplitPair(edges)
	if !ok {
		return d.addNode(RigidNode, sortBundle(edges))
	}
	comps := splitAt(edges, a, b)
	if len(comps) == 2 {
		p := d.newPair()
		id := d.decompose(append(comps[0], workEdge{u: a, v: b, real: -1, pair: p}))
		d.decompose(append(comps[1], workEdge{u: a, v: b, real: -1, pair: p}))
		return id
	}
	// Three or more components meet at {a, b}: they hang off a shared
	// P node of virtual edges.
	var skel []workEdge
	pairs := make([]int, len(comps))
	for i := range comps {
		pairs[i] = d.newPair()
		skel = append(skel, workEdge{u: a, v: b, real: -1, pair: pairs[i]})
	}
	id := d.addNode(ParallelNode, skel)
	for i, c := range comps {
		d.decompose(append(c, workEdge{u: a, v: b, real: -1, pair: pairs[i]}))
	}
	return id
}

// samePair reports whether every edge joins the same unordered pair.
func samePair(edges []workEdge) bool {
	k := edges[0].pairKey()
	for _, e := range edges[1:] {
		if e.pairKey() != k {
			return false
		}
	}
	return true
}

// sortBundle orders edges deterministically: real edges by id first,
// then virtual edges by pair id.
func sortBundle(edges []workEdge) []workEdge {
	out := append([]workEdge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].isVirtual(), out[j].isVirtual()
		if vi != vj {
			return !vi
		}
		if !vi {
			return out[i].real < out[j].real
		}
		return out[i].pair < out[j].pair
	})
	return out
}

// findBundle returns the lexicographically smallest endpoint pair joined
// by two or more edges.
func findBundle(edges []workEdge) (a, b core.VertexID, ok bool) {
	count := map[[2]core.VertexID]int{}
	for _, e := range edges {
		count[e.pairKey()]++
	}
	var keys [][2]core.VertexID
	for k, c := range count {
		if c >= 2 {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return 0, 0, false
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})
	return keys[0][0], keys[0][1], true
}

// asCycle reports whether the simple component is a single cycle and, if
// so, returns its edges walked from the smallest vertex toward its
// smaller-indexed incident edge.
func asCycle(edges []workEdge) ([]workEdge, bool) {
	inc := map[core.VertexID][]int{}
	for i, e := range edges {
		inc[e.u] = append(inc[e.u], i)
		inc[e.v] = append(inc[e.v], i)
	}
	for _, lst := range inc {
		if len(lst) != 2 {
			return nil, false
		}
	}
	// Walk from the smallest vertex; a cycle visits every edge once.
	start := edges[0].u
	for v := range inc {
		if v < start {
			start = v
		}
	}
	var walk []workEdge
	used := make([]bool, len(edges))
	cur := start
	for {
		nextIdx := -1
		for _, i := range inc[cur] {
			if !used[i] && (nextIdx == -1 || i < nextIdx) {
				nextIdx = i
			}
		}
		if nextIdx == -1 {
			break
		}
		used[nextIdx] = true
		walk = append(walk, edges[nextIdx])
		e := edges[nextIdx]
		if e.u == cur {
			cur = e.v
		} else {
			cur = e.u
		}
	}
	if len(walk) != len(edges) || cur != start {
		return nil, false
	}
	return walk, true
}

// findSplitPair returns the lexicographically smallest non-adjacent
// vertex pair whose removal disconnects the component.
func findSplitPair(edges []workEdge) (core.VertexID, core.VertexID, bool) {
	vset := map[core.VertexID]bool{}
	adjacent := map[[2]core.VertexID]bool{}
	for _, e := range edges {
		vset[e.u] = true
		vset[e.v] = true
		adjacent[e.pairKey()] = true
	}
	verts := make([]core.VertexID, 0, len(vset))
	for v := range vset {
		verts = append(verts, v)
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i] < verts[j] })

	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			a, b := verts[i], verts[j]
			if adjacent[[2]core.VertexID{a, b}] {
				continue
			}
			if disconnects(edges, verts, a, b) {
				return a, b, true
			}
		}
	}
	return 0, 0, false
}

// disconnects reports whether removing a and b leaves the remaining
// vertices in more than one connected component.
func disconnects(edges []workEdge, verts []core.VertexID, a, b core.VertexID) bool {
	idx := map[core.VertexID]int{}
	n := 0
	for _, v := range verts {
		if v != a && v != b {
			idx[v] = n
			n++
		}
	}
	if n < 2 {
		return false
	}
	d := dsu.New(n)
	for _, e := range edges {
		iu, uok := idx[e.u]
		iv, vok := idx[e.v]
		if uok && vok {
			d.Union(iu, iv)
		}
	}
	root := d.Find(0)
	for i := 1; i < n; i++ {
		if d.Find(i) != root {
			return true
		}
	}
	return false
}

// splitAt partitions edges into the components they fall into once a and
// b are removed (every edge keeps at least one endpoint outside the
// pair). Components are ordered by their smallest member vertex.
func splitAt(edges []workEdge, a, b core.VertexID) [][]workEdge {
	vset := map[core.VertexID]bool{}
	for _, e := range edges {
		vset[e.u] = true
		vset[e.v] = true
	}
	idx := map[core.VertexID]int{}
	var rest []core.VertexID
	for v := range vset {
		if v != a && v != b {
			rest = append(rest, v)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	for i, v := range rest {
		idx[v] = i
	}
	d := dsu.New(len(rest))
	for _, e := range edges {
		iu, uok := idx[e.u]
		iv, vok := idx[e.v]
		if uok && vok {
			d.Union(iu, iv)
		}
	}
	// Component order follows the smallest vertex in each component.
	compOf := map[int]int{}
	var comps [][]workEdge
	for _, v := range rest {
		r := d.Find(idx[v])
		if _, seen := compOf[r]; !seen {
			compOf[r] = len(comps)
			comps = append(comps, nil)
		}
	}
	for _, e := range edges {
		var w core.VertexID
		switch {
		case e.u != a && e.u != b:
			w = e.u
		default:
			w = e.v
		}
		c := compOf[d.Find(idx[w])]
		comps[c] = append(comps[c], e)
	}
	return comps
}
