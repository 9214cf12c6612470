package flow

import (
	"fmt"
	"math"
)

// arc is one directed residual edge. Arcs are always created in
// forward/backward pairs at indices 2k and 2k+1; arcs[i^1] is always the
// reverse of arcs[i].
type arc struct {
	to   int
	cap  int64 // remaining residual capacity
	cost int64 // per-unit cost (0 for plain max-flow)
	flow int64 // net flow pushed along the forward arc of the pair
}

// Network is a residual graph over dense integer node ids [0, n).
type Network struct {
	n    int
	arcs []arc
	adj  [][]int // adj[v] = indices into arcs of v's outgoing residual arcs
}

// NewNetwork returns an empty network over n nodes.
func NewNetwork(n int) *Network {
	return &Network{n: n, adj: make([][]int, n)}
}

// AddArc adds a directed arc u->v with the given capacity and per-unit
// cost, plus its zero-capacity residual reverse, and returns the forward
// arc's index. Cost may be negative only if the caller has already
// arranged for no negative cycles (MinCostFlow, which passes its input arc
// costs through unchanged, is the one internal caller that relies on this).
func (nw *Network) AddArc(u, v int, cap, cost int64) (int, error) {
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return 0, ErrBadNode
	}
	if cap < 0 {
		return 0, ErrNegativeCapacity
	}
	fwd := len(nw.arcs)
	nw.arcs = append(nw.arcs, arc{to: v, cap: cap, cost: cost})
	nw.arcs = append(nw.arcs, arc{to: u, cap: 0, cost: -cost})
	nw.adj[u] = append(nw.adj[u], fwd)
	nw.adj[v] = append(nw.adj[v], fwd+1)
	return fwd, nil
}

// push sends delta units of flow along arc index i, adjusting its residual
// capacity and its pair's. Net flow is tracked only on the even
// (forward-declared) arc of each pair; pushing along the odd (reverse)
// arc decrements it instead of maintaining a separate counter.
func (nw *Network) push(i int, delta int64) error {
	if delta == 0 {
		return nil
	}
	nw.arcs[i].cap -= delta
	nw.arcs[i^1].cap += delta
	if i%2 == 0 {
		if nw.arcs[i].flow > 0 && delta > math.MaxInt64-nw.arcs[i].flow {
			return ErrOverflow
		}
		nw.arcs[i].flow += delta
	} else {
		nw.arcs[i^1].flow -= delta
	}
	return nil
}

// FlowOf returns the net flow on the arc returned by the fwd index of a
// prior AddArc call.
func (nw *Network) FlowOf(fwdIdx int) int64 { return nw.arcs[fwdIdx].flow }

func (nw *Network) residualCap(i int) int64 { return nw.arcs[i].cap }

func checkNode(n, v int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d", ErrBadNode, v)
	}
	return nil
}
