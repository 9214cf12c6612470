package bcc

import (
	"sort"

	"github.com/khalidsaidi/topoloom/core"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	forceUndirected bool
}

// WithForceUndirected, when set, makes Compute project directed edges onto
// their undirected endpoints rather than considering directedness at all
// (bcc always treats the graph as undirected — this option exists only so
// callers can assert, in code, that they have acknowledged the projection,
// mirroring planarity.WithForceUndirected and spqr.WithForceUndirected).
func WithForceUndirected(v bool) Option {
	return func(o *options) { o.forceUndirected = v }
}

// Compute runs the low-link DFS suite over the undirected projection of
// g, returning its biconnected decomposition. Compute never
// errors: a disconnected graph simply yields multiple DFS trees and
// multiple blocks; an empty graph yields an empty Result.
//
// Complexity: O(V+E) time and memory.
func Compute(g *core.Graph, opts ...Option) *Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := g.VertexCount()
	disc := make([]int, n)
	low := make([]int, n)
	for i := range disc {
		disc[i] = -1
	}
	isArt := make([]bool, n)
	visitedEdge := make([]bool, g.EdgeCount())
	var edgeStack []core.EdgeID
	var blocks [][]core.EdgeID
	timer := 0

	type frame struct {
		v       core.VertexID
		idx     int
		viaEdge core.EdgeID // edge used to descend into v; -1 for the root frame
	}

	for root := core.VertexID(0); int(root) < n; root++ {
		if disc[root] != -1 {
			continue
		}
		disc[root] = timer
		low[root] = timer
		timer++
		rootChildren := 0
		stack := []frame{{v: root, viaEdge: -1}}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			v := top.v
			adj := g.Adjacency(v)

			if top.idx >= len(adj) {
				// v is fully explored; pop and propagate to its parent.
				stack = stack[:len(stack)-1]
				if len(stack) > 0 {
					parentEdge := top.viaEdge
					parent := stack[len(stack)-1].v
					if low[v] < low[parent] {
						low[parent] = low[v]
					}
					if low[v] >= disc[parent] {
						blocks = append(blocks, popBlock(&edgeStack, parentEdge))
						if parent != root {
							isArt[parent] = true
						}
					}
				} else if v == root {
					// handled below via rootChildren
				}
				continue
			}

			eid := adj[top.idx]
			top.idx++
			e, _ := g.Edge(eid)

			if e.IsLoop() {
				if !visitedEdge[eid] {
					visitedEdge[eid] = true
					blocks = append(blocks, []core.EdgeID{eid})
				}
				continue
			}
			if visitedEdge[eid] {
				continue
			}
			w := e.Other(v)

			switch {
			case disc[w] == -1:
				// Tree edge: descend.
				visitedEdge[eid] = true
				edgeStack = append(edgeStack, eid)
				disc[w] = timer
				low[w] = timer
				timer++
				if v == root {
					rootChildren++
				}
				stack = append(stack, frame{v: w, viaEdge: eid})
			case disc[w] < disc[v]:
				// Back edge to a strict ancestor.
				visitedEdge[eid] = true
				edgeStack = append(edgeStack, eid)
				if disc[w] < low[v] {
					low[v] = disc[w]
				}
			default:
				// Already classified from the other endpoint; nothing to do.
			}
		}

		if rootChildren > 1 {
			isArt[root] = true
		}
	}

	var articulation []core.VertexID
	for v := 0; v < n; v++ {
		if isArt[v] {
			articulation = append(articulation, core.VertexID(v))
		}
	}

	blockOf := make(map[core.EdgeID]int, g.EdgeCount())
	for bi, blk := range blocks {
		for _, eid := range blk {
			blockOf[eid] = bi
		}
	}
	var bridges []core.EdgeID
	for _, e := range g.Edges() {
		if len(blocks[blockOf[e.ID]]) == 1 {
			bridges = append(bridges, e.ID)
		}
	}

	return &Result{
		Blocks:       blocks,
		Articulation: articulation,
		Bridges:      bridges,
		Tree:         buildBCTree(g, blocks, articulation),
	}
}

// popBlock pops edgeStack down to and including untilEdge, returning the
// popped ids sorted ascending, which is insertion order.
func popBlock(edgeStack *[]core.EdgeID, untilEdge core.EdgeID) []core.EdgeID {
	s := *edgeStack
	i := len(s) - 1
	for i >= 0 && s[i] != untilEdge {
		i--
	}
	popped := append([]core.EdgeID(nil), s[i:]...)
	sort.Slice(popped, func(a, b int) bool { return popped[a] < popped[b] })
	*edgeStack = s[:i]
	return popped
}

// BuildBCTree rebuilds the bipartite BC-tree for an existing
// decomposition of g. Compute already returns the same tree in
// Result.Tree; this entry point serves callers who carry the blocks and
// articulation list separately.
func BuildBCTree(g *core.Graph, blocks [][]core.EdgeID, articulation []core.VertexID) *BCTree {
	return buildBCTree(g, blocks, articulation)
}

// buildBCTree links each block to the articulation vertices it contains.
func buildBCTree(g *core.Graph, blocks [][]core.EdgeID, articulation []core.VertexID) *BCTree {
	artIndex := make(map[core.VertexID]int, len(articulation))
	nodes := make([]BCNode, 0, len(blocks)+len(articulation))
	for _, v := range articulation {
		artIndex[v] = len(nodes)
		nodes = append(nodes, BCNode{Kind: ArticulationNode, Vertex: v})
	}

	for bi, blk := range blocks {
		blockNodeIdx := len(nodes)
		nodes = append(nodes, BCNode{Kind: BlockNode, BlockIndex: bi})
		seen := make(map[core.VertexID]bool)
		for _, eid := range blk {
			e, _ := g.Edge(eid)
			for _, v := range [2]core.VertexID{e.U, e.V} {
				if seen[v] {
					continue
				}
				seen[v] = true
				if artNodeIdx, ok := artIndex[v]; ok {
					nodes[blockNodeIdx].Neighbors = append(nodes[blockNodeIdx].Neighbors, artNodeIdx)
					nodes[artNodeIdx].Neighbors = append(nodes[artNodeIdx].Neighbors, blockNodeIdx)
				}
			}
		}
	}
	return &BCTree{Nodes: nodes}
}
