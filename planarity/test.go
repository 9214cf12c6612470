package planarity

import (
	"fmt"
	"sort"

	"github.com/khalidsaidi/topoloom/bcc"
	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/internal/dsu"
)

// Test checks whether g is planar. On success the result carries a
// rotation system under which every face walk closes; on failure it
// carries a Kuratowski-style witness. See the package doc for the
// method.
func Test(g *core.Graph, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	if g.HasDirectedEdges() && !o.forceUndirected {
		return nil, fmt.Errorf("%w", ErrUnsupportedInput)
	}

	working, ignored := projectEdges(g, o.selfLoops)
	rot, failed := embedWorking(g, working)
	if failed != nil {
		return &Result{Planar: false, Witness: buildWitness(g, failed)}, nil
	}
	return &Result{
		Planar:           true,
		Embedding:        rot,
		IgnoredSelfLoops: ignored,
	}, nil
}

// projectEdges applies the self-loop policy, returning the edge ids to
// embed and (if ignored) the dropped self-loop ids.
func projectEdges(g *core.Graph, policy SelfLoopPolicy) (working []core.EdgeID, ignored []core.EdgeID) {
	for _, e := range g.Edges() {
		if e.IsLoop() && policy == SelfLoopsIgnore {
			ignored = append(ignored, e.ID)
			continue
		}
		working = append(working, e.ID)
	}
	return working, ignored
}

// embedWorking embeds every biconnected block of the working edge set
// independently and assembles the per-block rotations into one rotation
// system. At a cut vertex each block's cyclic order stays contiguous —
// interleaving two blocks there would not be a planar embedding — and
// blocks are emitted in the order their first edge appears in the
// vertex's adjacency, so a forest's rotation system is exactly its
// insertion-order adjacency. On failure the edge set of the first block
// with no planar embedding is returned instead.
func embedWorking(g *core.Graph, working []core.EdgeID) (core.RotationSystem, []core.EdgeID) {
	inWorking := make([]bool, g.EdgeCount())
	for _, eid := range working {
		inWorking[eid] = true
	}

	blocks := bcc.Compute(g).Blocks
	blockOf := make([]int, g.EdgeCount())
	for i := range blockOf {
		blockOf[i] = -1
	}
	blockRot := make([]map[core.VertexID][]core.EdgeID, len(blocks))
	for bi, blk := range blocks {
		var edges []core.EdgeID
		for _, eid := range blk {
			if inWorking[eid] {
				edges = append(edges, eid)
				blockOf[eid] = bi
			}
		}
		if len(edges) == 0 {
			continue
		}
		rot, ok := embedBlock(g, edges)
		if !ok {
			return nil, edges
		}
		blockRot[bi] = rot
	}

	rs := make(core.RotationSystem, g.VertexCount())
	for _, v := range g.Vertices() {
		emitted := map[int]bool{}
		for _, eid := range g.Adjacency(v) {
			bi := blockOf[eid]
			if bi < 0 || emitted[bi] {
				continue
			}
			emitted[bi] = true
			rs[v] = append(rs[v], blockRot[bi][v]...)
		}
	}
	return rs, nil
}

// embedBlock produces the cyclic edge order at each vertex of one block
// (guaranteed biconnected by bcc), or reports that the block has no
// planar embedding. Single edges, self-loops, and parallel bundles have
// canonical embeddings; everything else goes through the incremental
// bridge embedder.
func embedBlock(g *core.Graph, edges []core.EdgeID) (map[core.VertexID][]core.EdgeID, bool) {
	if len(edges) == 1 {
		e, _ := g.Edge(edges[0])
		if e.IsLoop() {
			return map[core.VertexID][]core.EdgeID{e.U: {e.ID, e.ID}}, true
		}
		return map[core.VertexID][]core.EdgeID{
			e.U: {e.ID},
			e.V: {e.ID},
		}, true
	}
	if a, b, ok := sharedPair(g, edges); ok {
		ids := append([]core.EdgeID(nil), edges...)
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		rev := make([]core.EdgeID, len(ids))
		for i, eid := range ids {
			rev[len(ids)-1-i] = eid
		}
		return map[core.VertexID][]core.EdgeID{a: ids, b: rev}, true
	}

	be := newBlockEmbedder(g, edges)
	if !be.run() {
		return nil, false
	}
	return be.export(), true
}

// sharedPair reports whether every block edge joins the same two
// vertices (a parallel bundle), returning the pair with a < b.
func sharedPair(g *core.Graph, edges []core.EdgeID) (core.VertexID, core.VertexID, bool) {
	e0, _ := g.Edge(edges[0])
	a, b := e0.U, e0.V
	if a > b {
		a, b = b, a
	}
	for _, eid := range edges[1:] {
		e, _ := g.Edge(eid)
		u, v := e.U, e.V
		if u > v {
			u, v = v, u
		}
		if u != a || v != b {
			return 0, 0, false
		}
	}
	return a, b, true
}

// blockEmbedder incrementally embeds one biconnected block: an initial
// cycle first, then one bridge path at a time, always into a face whose
// boundary carries every attachment vertex of the chosen bridge. Each
// round embeds a bridge with the fewest admissible faces, so a forced
// bridge (exactly one admissible face) is placed before any other
// insertion can take that face away.
//
// Rotations are half-edge lists; half 2e sits at edge e's U endpoint
// and half 2e+1 at its V endpoint, the same pairing the mesh package
// uses.
type blockEmbedder struct {
	g     *core.Graph
	edges []core.EdgeID
	adj   map[core.VertexID][]core.EdgeID // block adjacency, insertion order

	rot        map[core.VertexID][]int
	embedded   map[core.EdgeID]bool
	onSubgraph map[core.VertexID]bool
	left       int
}

func newBlockEmbedder(g *core.Graph, edges []core.EdgeID) *blockEmbedder {
	be := &blockEmbedder{
		g:          g,
		edges:      edges,
		adj:        map[core.VertexID][]core.EdgeID{},
		rot:        map[core.VertexID][]int{},
		embedded:   map[core.EdgeID]bool{},
		onSubgraph: map[core.VertexID]bool{},
		left:       len(edges),
	}
	inBlock := map[core.EdgeID]bool{}
	for _, eid := range edges {
		inBlock[eid] = true
	}
	seen := map[core.VertexID]bool{}
	for _, eid := range edges {
		e, _ := g.Edge(eid)
		for _, v := range [2]core.VertexID{e.U, e.V} {
			if seen[v] {
				continue
			}
			seen[v] = true
			for _, aid := range g.Adjacency(v) {
				if inBlock[aid] {
					be.adj[v] = append(be.adj[v], aid)
				}
			}
		}
	}
	return be
}

func (be *blockEmbedder) run() bool {
	verts, cyc := be.initialCycle()
	be.embedCycle(verts, cyc)
	for be.left > 0 {
		faces := be.traceFaces()
		brs := be.bridges()
		bestIdx, bestCount, bestFace := -1, 0, -1
		for i := range brs {
			count, first := admissibleFaces(faces, brs[i].attach)
			if count == 0 {
				return false
			}
			if bestIdx < 0 || count < bestCount {
				bestIdx, bestCount, bestFace = i, count, first
			}
		}
		pathVerts, path := be.choosePath(&brs[bestIdx])
		be.embedPath(faces[bestFace], pathVerts, path)
	}
	return true
}

// half returns the half-edge of eid anchored at the given endpoint.
func (be *blockEmbedder) half(eid core.EdgeID, at core.VertexID) int {
	e, _ := be.g.Edge(eid)
	if at == e.U {
		return int(eid) * 2
	}
	return int(eid)*2 + 1
}

func (be *blockEmbedder) originOf(h int) core.VertexID {
	e, _ := be.g.Edge(core.EdgeID(h / 2))
	if h%2 == 0 {
		return e.U
	}
	return e.V
}

func (be *blockEmbedder) smallestVertex() core.VertexID {
	first := true
	var best core.VertexID
	for v := range be.adj {
		if first || v < best {
			best, first = v, false
		}
	}
	return best
}

// initialCycle finds a cycle by DFS from the block's smallest vertex,
// stopping at the first non-tree edge. That edge always closes against
// an ancestor: had its far endpoint finished earlier, the same edge
// would have been seen (and returned) from that side first. The cycle
// is the tree path between the endpoints plus the closing edge, with
// cyc[i] joining verts[i] to verts[(i+1) mod len].
func (be *blockEmbedder) initialCycle() ([]core.VertexID, []core.EdgeID) {
	start := be.smallestVertex()
	parentEdge := map[core.VertexID]core.EdgeID{}
	visited := map[core.VertexID]bool{start: true}
	type frame struct {
		v   core.VertexID
		idx int
	}
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		lst := be.adj[top.v]
		if top.idx >= len(lst) {
			stack = stack[:len(stack)-1]
			continue
		}
		eid := lst[top.idx]
		top.idx++
		if pe, ok := parentEdge[top.v]; ok && pe == eid {
			continue
		}
		e, _ := be.g.Edge(eid)
		w := e.Other(top.v)
		if !visited[w] {
			visited[w] = true
			parentEdge[w] = eid
			stack = append(stack, frame{v: w})
			continue
		}
		var revV []core.VertexID
		var revE []core.EdgeID
		for cur := top.v; cur != w; {
			pe := parentEdge[cur]
			revV = append(revV, cur)
			revE = append(revE, pe)
			p, _ := be.g.Edge(pe)
			cur = p.Other(cur)
		}
		verts := []core.VertexID{w}
		var cyc []core.EdgeID
		for i := len(revV) - 1; i >= 0; i-- {
			verts = append(verts, revV[i])
			cyc = append(cyc, revE[i])
		}
		cyc = append(cyc, eid)
		return verts, cyc
	}
	// Unreachable: a multi-edge biconnected block always has a cycle.
	return nil, nil
}

func (be *blockEmbedder) embedCycle(verts []core.VertexID, cyc []core.EdgeID) {
	k := len(cyc)
	for i, v := range verts {
		prev := cyc[(i-1+k)%k]
		next := cyc[i]
		be.rot[v] = []int{be.half(prev, v), be.half(next, v)}
		be.onSubgraph[v] = true
	}
	for _, eid := range cyc {
		be.embedded[eid] = true
		be.left--
	}
}

// face is one face of the current partial embedding: its boundary
// half-edges in walk order, plus the set of boundary vertices. The
// embedded subgraph stays biconnected throughout, so every boundary is
// a simple cycle and each vertex appears as the origin of exactly one
// boundary half-edge.
type face struct {
	halves []int
	verts  map[core.VertexID]bool
}

// traceFaces walks next = rotation-successor-of-twin from every
// unvisited half-edge in increasing id order.
func (be *blockEmbedder) traceFaces() []face {
	pos := map[int]int{}
	var halves []int
	for _, lst := range be.rot {
		for i, h := range lst {
			pos[h] = i
			halves = append(halves, h)
		}
	}
	sort.Ints(halves)

	next := func(h int) int {
		t := h ^ 1
		lst := be.rot[be.originOf(t)]
		return lst[(pos[t]+1)%len(lst)]
	}

	visited := map[int]bool{}
	var faces []face
	for _, h := range halves {
		if visited[h] {
			continue
		}
		f := face{verts: map[core.VertexID]bool{}}
		for cur := h; ; {
			visited[cur] = true
			f.halves = append(f.halves, cur)
			f.verts[be.originOf(cur)] = true
			cur = next(cur)
			if cur == h {
				break
			}
		}
		faces = append(faces, f)
	}
	return faces
}

// bridgeT is one bridge of the embedded subgraph: a chord, or a
// connected component of unembedded vertices together with every
// unembedded edge touching it. attach lists the embedded vertices the
// bridge must reach through.
type bridgeT struct {
	edges  []core.EdgeID
	attach []core.VertexID
}

// bridges groups the unembedded block edges, ordered by smallest edge
// id. A chord (both endpoints embedded) is its own bridge; everything
// else groups by the component its unembedded endpoints fall into.
func (be *blockEmbedder) bridges() []bridgeT {
	d := dsu.New(be.g.VertexCount())
	var rest []core.EdgeID
	for _, eid := range be.edges {
		if be.embedded[eid] {
			continue
		}
		rest = append(rest, eid)
		e, _ := be.g.Edge(eid)
		if !be.onSubgraph[e.U] && !be.onSubgraph[e.V] {
			d.Union(int(e.U), int(e.V))
		}
	}

	group := map[int][]core.EdgeID{}
	var chords [][]core.EdgeID
	for _, eid := range rest {
		e, _ := be.g.Edge(eid)
		switch {
		case be.onSubgraph[e.U] && be.onSubgraph[e.V]:
			chords = append(chords, []core.EdgeID{eid})
		case be.onSubgraph[e.U]:
			root := d.Find(int(e.V))
			group[root] = append(group[root], eid)
		default:
			root := d.Find(int(e.U))
			group[root] = append(group[root], eid)
		}
	}

	out := make([]bridgeT, 0, len(group)+len(chords))
	for _, edges := range group {
		out = append(out, be.newBridge(edges))
	}
	for _, edges := range chords {
		out = append(out, be.newBridge(edges))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].edges[0] < out[j].edges[0] })
	return out
}

func (be *blockEmbedder) newBridge(edges []core.EdgeID) bridgeT {
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	set := map[core.VertexID]bool{}
	for _, eid := range edges {
		e, _ := be.g.Edge(eid)
		for _, v := range [2]core.VertexID{e.U, e.V} {
			if be.onSubgraph[v] {
				set[v] = true
			}
		}
	}
	attach := make([]core.VertexID, 0, len(set))
	for v := range set {
		attach = append(attach, v)
	}
	sort.Slice(attach, func(i, j int) bool { return attach[i] < attach[j] })
	return bridgeT{edges: edges, attach: attach}
}

// admissibleFaces counts the faces whose boundary carries every
// attachment vertex, returning the count and the smallest such face id.
func admissibleFaces(faces []face, attach []core.VertexID) (int, int) {
	count, first := 0, -1
	for i := range faces {
		ok := true
		for _, v := range attach {
			if !faces[i].verts[v] {
				ok = false
				break
			}
		}
		if ok {
			count++
			if first < 0 {
				first = i
			}
		}
	}
	return count, first
}

// choosePath picks the path of bridge edges to embed next: the chord
// itself, or a BFS walk from the smallest attachment through the
// bridge's interior to the first other attachment reached.
func (be *blockEmbedder) choosePath(br *bridgeT) ([]core.VertexID, []core.EdgeID) {
	if len(br.edges) == 1 {
		e, _ := be.g.Edge(br.edges[0])
		a, b := e.U, e.V
		if a > b {
			a, b = b, a
		}
		return []core.VertexID{a, b}, []core.EdgeID{br.edges[0]}
	}

	inBridge := map[core.EdgeID]bool{}
	for _, eid := range br.edges {
		inBridge[eid] = true
	}
	a := br.attach[0]
	parentEdge := map[core.VertexID]core.EdgeID{}
	visited := map[core.VertexID]bool{a: true}
	queue := []core.VertexID{a}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, eid := range be.adj[v] {
			if !inBridge[eid] {
				continue
			}
			e, _ := be.g.Edge(eid)
			w := e.Other(v)
			if visited[w] {
				continue
			}
			parentEdge[w] = eid
			if be.onSubgraph[w] {
				var revV []core.VertexID
				var revE []core.EdgeID
				for cur := w; cur != a; {
					pe := parentEdge[cur]
					revV = append(revV, cur)
					revE = append(revE, pe)
					p, _ := be.g.Edge(pe)
					cur = p.Other(cur)
				}
				verts := []core.VertexID{a}
				var path []core.EdgeID
				for i := len(revV) - 1; i >= 0; i-- {
					verts = append(verts, revV[i])
					path = append(path, revE[i])
				}
				return verts, path
			}
			visited[w] = true
			queue = append(queue, w)
		}
	}
	// Unreachable: a bridge of a biconnected block joins >= 2 attachments.
	return nil, nil
}

// embedPath splices the path into face f: the first and last path
// half-edges enter the rotations of the two attachments immediately
// before f's boundary half-edge there (the wedge of f at that vertex),
// and interior vertices take the unique degree-2 rotation.
func (be *blockEmbedder) embedPath(f face, verts []core.VertexID, path []core.EdgeID) {
	a := verts[0]
	b := verts[len(verts)-1]
	ha, hb := -1, -1
	for _, h := range f.halves {
		switch be.originOf(h) {
		case a:
			if ha < 0 {
				ha = h
			}
		case b:
			if hb < 0 {
				hb = h
			}
		}
	}
	be.rot[a] = spliceBefore(be.rot[a], ha, be.half(path[0], a))
	be.rot[b] = spliceBefore(be.rot[b], hb, be.half(path[len(path)-1], b))
	for i := 1; i < len(verts)-1; i++ {
		w := verts[i]
		be.rot[w] = []int{be.half(path[i-1], w), be.half(path[i], w)}
		be.onSubgraph[w] = true
	}
	for _, eid := range path {
		be.embedded[eid] = true
		be.left--
	}
}

func spliceBefore(lst []int, marker, insert int) []int {
	out := make([]int, 0, len(lst)+1)
	for _, h := range lst {
		if h == marker {
			out = append(out, insert)
		}
		out = append(out, h)
	}
	return out
}

func (be *blockEmbedder) export() map[core.VertexID][]core.EdgeID {
	out := make(map[core.VertexID][]core.EdgeID, len(be.rot))
	for v, halves := range be.rot {
		lst := make([]core.EdgeID, len(halves))
		for i, h := range halves {
			lst[i] = core.EdgeID(h / 2)
		}
		out[v] = lst
	}
	return out
}

// buildWitness shrinks a nonplanar block to an edge-minimal nonplanar
// subgraph by deleting one edge at a time whenever the rest stays
// nonplanar. Edge-minimal nonplanar graphs are exactly the subdivisions
// of K5 and K3,3, so the surviving edges are the certificate; a vertex
// of degree four among them distinguishes the two kinds.
func buildWitness(g *core.Graph, blockEdges []core.EdgeID) *Witness {
	cur := append([]core.EdgeID(nil), blockEdges...)
	sort.Slice(cur, func(i, j int) bool { return cur[i] < cur[j] })
	for i := 0; i < len(cur); {
		cand := make([]core.EdgeID, 0, len(cur)-1)
		cand = append(cand, cur[:i]...)
		cand = append(cand, cur[i+1:]...)
		if !planarEdgeSubset(g, cand) {
			cur = cand
		} else {
			i++
		}
	}

	kind := WitnessK33
	deg := map[core.VertexID]int{}
	for _, eid := range cur {
		e, _ := g.Edge(eid)
		deg[e.U]++
		deg[e.V]++
	}
	for _, d := range deg {
		if d >= 4 {
			kind = WitnessK5
			break
		}
	}
	return &Witness{Kind: kind, Edges: cur}
}

// planarEdgeSubset rebuilds the subgraph of g induced by the given
// edges (over the full vertex set) and embeds it.
func planarEdgeSubset(g *core.Graph, edges []core.EdgeID) bool {
	b := core.NewGraphBuilder()
	for range g.Vertices() {
		b.AddVertex(nil)
	}
	for _, eid := range edges {
		e, _ := g.Edge(eid)
		b.AddEdge(e.U, e.V, false)
	}
	sub := b.Build()
	all := make([]core.EdgeID, sub.EdgeCount())
	for i := range all {
		all[i] = core.EdgeID(i)
	}
	_, failed := embedWorking(sub, all)
	return failed == nil
}
