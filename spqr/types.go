package spqr

import "github.com/khalidsaidi/topoloom/core"

// NodeKind tags the four kinds of SPQR tree nodes.
type NodeKind int

const (
	// SeriesNode (S) wraps a skeleton that is a simple cycle.
	SeriesNode NodeKind = iota
	// ParallelNode (P) wraps a two-vertex bundle of parallel edges.
	ParallelNode
	// RigidNode (R) wraps a skeleton with no non-adjacent split pair.
	RigidNode
	// EdgeNode (Q) wraps a single real edge.
	EdgeNode
)

// String returns the conventional one-letter tag.
func (k NodeKind) String() string {
	switch k {
	case SeriesNode:
		return "S"
	case ParallelNode:
		return "P"
	case RigidNode:
		return "R"
	case EdgeNode:
		return "Q"
	}
	return "?"
}

// SkelEdge is one edge of a node's skeleton, between skeleton-local
// vertex indices U and V. A real edge carries the original EdgeID; a
// virtual edge carries the pair id shared with exactly one skeleton edge
// in an adjacent node, plus that twin node's id.
type SkelEdge struct {
	U, V     int
	Real     core.EdgeID // valid when !IsVirtual
	Pair     int         // valid when IsVirtual; unique across the tree
	TwinNode int         // valid when IsVirtual
	IsVirtual bool
}

// Skeleton is the small graph inside one SPQR node. VertexMap maps
// skeleton-local vertex indices back to original graph vertices.
type Skeleton struct {
	VertexMap []core.VertexID
	Edges     []SkelEdge
}

// localVertex returns the skeleton-local index of original vertex v, or
// -1 when v is not in this skeleton.
func (s *Skeleton) localVertex(v core.VertexID) int {
	for i, ov := range s.VertexMap {
		if ov == v {
			return i
		}
	}
	return -1
}

// Node is one node of an SPQR tree.
type Node struct {
	ID       int
	Kind     NodeKind
	Skeleton Skeleton
	// Neighbors lists adjacent tree node ids in ascending order.
	Neighbors []int
	// Flipped records whether FlipSkeleton has mirrored this (rigid)
	// node's embedding an odd number of times.
	Flipped bool
}

// Tree is the SPQR decomposition of one biconnected graph. Nodes
// cross-reference each other by id; virtual edges are matched across
// adjacent nodes by pair id.
type Tree struct {
	Nodes []Node
	// Root is the node from which the decomposition was grown; any node
	// works as an expansion root, this one is just the deterministic
	// default.
	Root int

	graph *core.Graph // frozen source graph; read-only
}

// Graph returns the (immutable) graph this tree decomposes.
func (t *Tree) Graph() *core.Graph { return t.graph }

// Forest is the result of DecomposeAll on a graph that need not be
// biconnected: one tree per block with at least one edge, plus the
// articulation vertices gluing the blocks together.
type Forest struct {
	Trees        []*Tree
	Articulation []core.VertexID
}

// SafeResult is the result of DecomposeSafe: the tree of the largest
// block plus a human-readable note about what was skipped.
type SafeResult struct {
	Tree *Tree
	Note string
}
