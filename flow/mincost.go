package flow

import (
	"container/heap"
	"fmt"
	"math"
)

// Arc is one directed arc of a min-cost-flow problem. Flow on the arc must
// stay within [Lower, Upper]; each unit costs Cost (which may be negative).
type Arc struct {
	From, To int
	Lower    int64
	Upper    int64
	Cost     int64
}

// Problem is the input to MinCostFlow: a node count, an ordered arc list,
// and per-node demands. A positive demand is a supply (the node must emit
// that much net flow), a negative demand is a sink. Feasibility requires
// the demands to sum to zero.
type Problem struct {
	NodeCount int
	Arcs      []Arc
	Demands   []int64
}

// Result reports the outcome of MinCostFlow. When Feasible is false the
// other fields are zero; causes are unbalanced demands, insufficient
// capacity, or a node made unreachable by the lower-bound shift.
type Result struct {
	Feasible   bool
	FlowByArc  []int64 // indexed like Problem.Arcs; includes restored lower bounds
	TotalCost  int64
	Potentials []int64 // final node potentials, indexed by node id
}

// MinCostFlow finds flows f[a] in [Lower, Upper] satisfying every node's
// demand at minimum total cost, by successive shortest augmenting paths on
// the residual graph with node potentials: a Bellman-Ford seed (costs may
// be negative), then Dijkstra over reduced costs on every later
// augmentation. Lower bounds are eliminated up front by shifting
// f := f - Lower and adjusting demands, and restored in the reported flows.
//
// Validation errors (out-of-range nodes, Upper < Lower, negative bounds,
// demand vector of the wrong length) are returned as errors; an
// infeasible but well-formed problem returns Feasible=false with a nil
// error. All arithmetic is int64 with overflow detection (ErrOverflow).
//
// Complexity: O(F * E log V) augmentations where F bounds the total
// supply, plus one O(V * E) Bellman-Ford seed.
// Memory:     O(V + E)
func MinCostFlow(p *Problem) (*Result, error) {
	if p.NodeCount < 0 {
		return nil, fmt.Errorf("%w: negative node count", ErrBadNode)
	}
	if len(p.Demands) != p.NodeCount {
		return nil, fmt.Errorf("%w: demand vector length %d, node count %d",
			ErrBadDemands, len(p.Demands), p.NodeCount)
	}
	for _, a := range p.Arcs {
		if a.From < 0 || a.From >= p.NodeCount || a.To < 0 || a.To >= p.NodeCount {
			return nil, fmt.Errorf("%w: arc %d->%d", ErrBadNode, a.From, a.To)
		}
		if a.Lower < 0 || a.Upper < a.Lower {
			return nil, fmt.Errorf("%w: arc %d->%d bounds [%d,%d]",
				ErrNegativeCapacity, a.From, a.To, a.Lower, a.Upper)
		}
	}

	var sum int64
	for _, d := range p.Demands {
		next, err := addChecked(sum, d)
		if err != nil {
			return nil, err
		}
		sum = next
	}
	if sum != 0 {
		return &Result{Feasible: false}, nil
	}

	// Shift out lower bounds: arc a permanently carries Lower units, so
	// its tail has that much supply already spent and its head that much
	// already delivered.
	eff := append([]int64(nil), p.Demands...)
	for _, a := range p.Arcs {
		var err error
		if eff[a.From], err = addChecked(eff[a.From], -a.Lower); err != nil {
			return nil, err
		}
		if eff[a.To], err = addChecked(eff[a.To], a.Lower); err != nil {
			return nil, err
		}
	}

	// Residual network over the problem nodes plus a super source/sink
	// absorbing the shifted demands.
	src := p.NodeCount
	sink := p.NodeCount + 1
	nw := NewNetwork(p.NodeCount + 2)
	fwd := make([]int, len(p.Arcs))
	for i, a := range p.Arcs {
		idx, err := nw.AddArc(a.From, a.To, a.Upper-a.Lower, a.Cost)
		if err != nil {
			return nil, err
		}
		fwd[i] = idx
	}
	var needed int64
	for v, d := range eff {
		switch {
		case d > 0:
			if _, err := nw.AddArc(src, v, d, 0); err != nil {
				return nil, err
			}
			next, err := addChecked(needed, d)
			if err != nil {
				return nil, err
			}
			needed = next
		case d < 0:
			if _, err := nw.AddArc(v, sink, -d, 0); err != nil {
				return nil, err
			}
		}
	}

	pot, err := bellmanFordPotentials(nw)
	if err != nil {
		return nil, err
	}

	var sent int64
	for sent < needed {
		dist, parentArc, reached := dijkstraReduced(nw, src, pot)
		if !reached[sink] {
			break
		}
		// Bottleneck along the path.
		delta := needed - sent
		for cur := sink; cur != src; {
			ai := parentArc[cur]
			if c := nw.residualCap(ai); c < delta {
				delta = c
			}
			cur = nw.arcs[ai^1].to
		}
		for cur := sink; cur != src; {
			ai := parentArc[cur]
			if err := nw.push(ai, delta); err != nil {
				return nil, err
			}
			cur = nw.arcs[ai^1].to
		}
		sent += delta
		for v := range pot {
			if reached[v] {
				next, perr := addChecked(pot[v], dist[v])
				if perr != nil {
					return nil, perr
				}
				pot[v] = next
			}
		}
	}
	if sent < needed {
		return &Result{Feasible: false}, nil
	}

	flows := make([]int64, len(p.Arcs))
	var total int64
	for i, a := range p.Arcs {
		f, ferr := addChecked(nw.FlowOf(fwd[i]), a.Lower)
		if ferr != nil {
			return nil, ferr
		}
		flows[i] = f
		term, merr := mulChecked(a.Cost, f)
		if merr != nil {
			return nil, merr
		}
		if total, err = addChecked(total, term); err != nil {
			return nil, err
		}
	}

	return &Result{
		Feasible:   true,
		FlowByArc:  flows,
		TotalCost:  total,
		Potentials: pot[:p.NodeCount],
	}, nil
}

// bellmanFordPotentials seeds node potentials by relaxing every
// positive-capacity residual arc from an all-zero start (Johnson's
// implicit-super-node form), so negative input costs are absorbed before
// the Dijkstra iterations begin.
func bellmanFordPotentials(nw *Network) ([]int64, error) {
	pot := make([]int64, nw.n)
	for round := 0; round < nw.n; round++ {
		changed := false
		for u := 0; u < nw.n; u++ {
			for _, ai := range nw.adj[u] {
				a := nw.arcs[ai]
				if a.cap <= 0 {
					continue
				}
				cand, err := addChecked(pot[u], a.cost)
				if err != nil {
					return nil, err
				}
				if cand < pot[a.to] {
					pot[a.to] = cand
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return pot, nil
}

// pqItem is a lazy-decrease-key heap entry; stale entries are skipped on
// pop. Ties on distance break toward the smaller node id so the chosen
// augmenting path is the same on every run.
type pqItem struct {
	dist int64
	node int
}

type pq []pqItem

func (q pq) Len() int { return len(q) }
func (q pq) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].node < q[j].node
}
func (q pq) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *pq) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *pq) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// dijkstraReduced runs Dijkstra from src over reduced costs
// cost + pot[u] - pot[v] (non-negative once potentials are valid),
// returning distances, the residual arc used to reach each node, and a
// reachability mask.
func dijkstraReduced(nw *Network, src int, pot []int64) (dist []int64, parentArc []int, reached []bool) {
	dist = make([]int64, nw.n)
	parentArc = make([]int, nw.n)
	reached = make([]bool, nw.n)
	done := make([]bool, nw.n)
	for i := range dist {
		dist[i] = math.MaxInt64
		parentArc[i] = -1
	}
	dist[src] = 0
	reached[src] = true

	q := &pq{{dist: 0, node: src}}
	for q.Len() > 0 {
		it := heap.Pop(q).(pqItem)
		u := it.node
		if done[u] || it.dist > dist[u] {
			continue
		}
		done[u] = true
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.cap <= 0 {
				continue
			}
			rc := a.cost + pot[u] - pot[a.to]
			cand := dist[u] + rc
			if cand < dist[a.to] {
				dist[a.to] = cand
				parentArc[a.to] = ai
				reached[a.to] = true
				heap.Push(q, pqItem{dist: cand, node: a.to})
			}
		}
	}
	return dist, parentArc, reached
}

// addChecked returns a+b or ErrOverflow.
func addChecked(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// mulChecked returns a*b or ErrOverflow.
func mulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a {
		return 0, ErrOverflow
	}
	return r, nil
}
