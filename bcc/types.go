package bcc

import "github.com/khalidsaidi/topoloom/core"

// Result is the output of Compute: the biconnected decomposition of a
// graph's undirected projection.
type Result struct {
	// Blocks lists each biconnected component as its set of edge ids, in
	// DFS-completion order; within a block, edges are in ascending EdgeID
	// (insertion) order.
	Blocks [][]core.EdgeID

	// Articulation lists articulation vertices in ascending VertexID
	// order.
	Articulation []core.VertexID

	// Bridges lists bridge edge ids in ascending EdgeID order. An edge is
	// a bridge iff it is the sole member of its block.
	Bridges []core.EdgeID

	// Tree is the BC-tree over Blocks and Articulation.
	Tree *BCTree
}

// NodeKind tags a BCTree node as either a block or an articulation vertex.
type NodeKind int

const (
	// BlockNode wraps an index into Result.Blocks.
	BlockNode NodeKind = iota
	// ArticulationNode wraps a core.VertexID.
	ArticulationNode
)

// BCNode is one node of the BC-tree.
type BCNode struct {
	Kind NodeKind
	// BlockIndex is valid when Kind == BlockNode: an index into
	// Result.Blocks.
	BlockIndex int
	// Vertex is valid when Kind == ArticulationNode.
	Vertex core.VertexID
	// Neighbors lists adjacent node indices within BCTree.Nodes. A
	// BlockNode is only ever adjacent to ArticulationNodes and vice versa
	// (the BC-tree is bipartite by construction).
	Neighbors []int
}

// BCTree is a bipartite tree: every ArticulationNode is adjacent to every
// BlockNode whose block contains that vertex.
type BCTree struct {
	Nodes []BCNode
}
