package spqr

import (
	"fmt"

	"github.com/khalidsaidi/topoloom/core"
	"github.com/khalidsaidi/topoloom/planarity"
)

// FlipSkeleton mirrors the embedding of a rigid node: MaterializeEmbedding
// will reverse every rotation contributed by this skeleton. Flipping twice
// restores the original orientation.
func FlipSkeleton(t *Tree, node int) error {
	if node < 0 || node >= len(t.Nodes) {
		return fmt.Errorf("%w: node %d", ErrBadNode, node)
	}
	if t.Nodes[node].Kind != RigidNode {
		return fmt.Errorf("%w: node %d is %s, not R", ErrBadNode, node, t.Nodes[node].Kind)
	}
	t.Nodes[node].Flipped = !t.Nodes[node].Flipped
	return nil
}

// PermuteParallel reorders the skeleton edges of a P node. order must be
// a permutation of [0, len(skeleton.Edges)); the bundle's embedding order
// (and therefore MaterializeEmbedding's output) follows it.
func PermuteParallel(t *Tree, node int, order []int) error {
	if node < 0 || node >= len(t.Nodes) {
		return fmt.Errorf("%w: node %d", ErrBadNode, node)
	}
	n := &t.Nodes[node]
	if n.Kind != ParallelNode {
		return fmt.Errorf("%w: node %d is %s, not P", ErrBadNode, node, n.Kind)
	}
	if len(order) != len(n.Skeleton.Edges) {
		return fmt.Errorf("%w: length %d, want %d", ErrBadPermutation, len(order), len(n.Skeleton.Edges))
	}
	seen := make([]bool, len(order))
	for _, i := range order {
		if i < 0 || i >= len(order) || seen[i] {
			return fmt.Errorf("%w: %v", ErrBadPermutation, order)
		}
		seen[i] = true
	}
	reordered := make([]SkelEdge, len(order))
	for pos, i := range order {
		reordered[pos] = n.Skeleton.Edges[i]
	}
	n.Skeleton.Edges = reordered
	return nil
}

// rotToken is one slot of a rotation list during expansion: either a real
// edge or a virtual placeholder still to be spliced.
type rotToken struct {
	u, v      core.VertexID
	real      core.EdgeID
	pair      int
	twin      int
	isVirtual bool
}

// MaterializeEmbedding expands the tree as seen from node: every virtual
// edge is recursively replaced by its twin skeleton's embedding, yielding
// a rotation system over the original graph that covers exactly the real
// edges of this tree. Rigid skeletons are embedded with the planarity
// test (honoring Flipped); P bundles follow their stored edge order;
// cycles and single edges are trivial.
//
// Returns ErrNonPlanarSkeleton when a rigid skeleton has no planar
// embedding.
func MaterializeEmbedding(t *Tree, node int) (core.RotationSystem, error) {
	if node < 0 || node >= len(t.Nodes) {
		return nil, fmt.Errorf("%w: node %d", ErrBadNode, node)
	}
	rot, err := t.expandNode(node, -1, map[int]map[core.VertexID][]rotToken{})
	if err != nil {
		return nil, err
	}
	out := make(core.RotationSystem, t.graph.VertexCount())
	for v, tokens := range rot {
		lst := make([]core.EdgeID, len(tokens))
		for i, tok := range tokens {
			lst[i] = tok.real
		}
		out[v] = lst
	}
	return out, nil
}

// expandNode returns the fully expanded rotation of the subtree hanging
// off node, keeping (only) the virtual edge with pair id inPair as a
// placeholder for the caller to splice out. Pass inPair = -1 at the root.
// cache holds already-expanded children by pair id: each virtual edge
// surfaces at both of its endpoints, and the child must only expand once.
func (t *Tree) expandNode(node, inPair int, cache map[int]map[core.VertexID][]rotToken) (map[core.VertexID][]rotToken, error) {
	local, err := t.localRotation(node)
	if err != nil {
		return nil, err
	}
	out := make(map[core.VertexID][]rotToken, len(local))
	for v, tokens := range local {
		var merged []rotToken
		for _, tok := range tokens {
			if !tok.isVirtual || tok.pair == inPair {
				merged = append(merged, tok)
				continue
			}
			child, ok := cache[tok.pair]
			if !ok {
				var cerr error
				child, cerr = t.expandNode(tok.twin, tok.pair, cache)
				if cerr != nil {
					return nil, cerr
				}
				cache[tok.pair] = child
			}
			merged = append(merged, spliceOut(child[v], tok.pair)...)
			// Vertices internal to the child subtree transfer wholesale;
			// the two shared endpoints are handled in place.
			for cv, ctokens := range child {
				if cv != tok.u && cv != tok.v {
					out[cv] = ctokens
				}
			}
		}
		out[v] = merged
	}
	return out, nil
}

// spliceOut removes the placeholder for pair from a cyclic token list,
// returning the remaining tokens as a linear run starting right after it.
func spliceOut(tokens []rotToken, pair int) []rotToken {
	at := -1
	for i, tok := range tokens {
		if tok.isVirtual && tok.pair == pair {
			at = i
			break
		}
	}
	if at < 0 {
		return tokens
	}
	out := make([]rotToken, 0, len(tokens)-1)
	out = append(out, tokens[at+1:]...)
	out = append(out, tokens[:at]...)
	return out
}

// localRotation produces the per-vertex token lists of one skeleton,
// keyed by original vertex ids.
func (t *Tree) localRotation(node int) (map[core.VertexID][]rotToken, error) {
	n := &t.Nodes[node]
	sk := &n.Skeleton
	tokens := make([]rotToken, len(sk.Edges))
	for i, se := range sk.Edges {
		tokens[i] = rotToken{
			u: sk.VertexMap[se.U], v: sk.VertexMap[se.V],
			real: se.Real, pair: se.Pair, twin: se.TwinNode,
			isVirtual: se.IsVirtual,
		}
	}

	rot := make(map[core.VertexID][]rotToken)
	switch n.Kind {
	case EdgeNode, SeriesNode:
		// Degree-2 skeletons: any incidence order is the unique cyclic
		// order.
		for _, tok := range tokens {
			rot[tok.u] = append(rot[tok.u], tok)
			rot[tok.v] = append(rot[tok.v], tok)
		}
	case ParallelNode:
		// Stored order at the smaller endpoint, reversed at the larger,
		// which is the planar embedding of a bundle.
		a, b := sk.VertexMap[0], sk.VertexMap[1]
		if a > b {
			a, b = b, a
		}
		for _, tok := range tokens {
			rot[a] = append(rot[a], tok)
		}
		for i := len(tokens) - 1; i >= 0; i-- {
			rot[b] = append(rot[b], tokens[i])
		}
	case RigidNode:
		b := core.NewGraphBuilder()
		for range sk.VertexMap {
			b.AddVertex(nil)
		}
		for _, se := range sk.Edges {
			b.AddEdge(core.VertexID(se.U), core.VertexID(se.V), false)
		}
		res, err := planarity.Test(b.Build())
		if err != nil {
			return nil, err
		}
		if !res.Planar {
			return nil, fmt.Errorf("%w: node %d", ErrNonPlanarSkeleton, node)
		}
		for lv, order := range res.Embedding {
			ov := sk.VertexMap[lv]
			lst := make([]rotToken, len(order))
			for i, skelIdx := range order {
				lst[i] = tokens[skelIdx]
			}
			if n.Flipped {
				for i, j := 0, len(lst)-1; i < j; i, j = i+1, j-1 {
					lst[i], lst[j] = lst[j], lst[i]
				}
			}
			rot[ov] = lst
		}
	}
	return rot, nil
}
