package flow

import "math"

// EdmondsKarp computes the maximum flow from s to t in nw by repeatedly
// augmenting along a shortest (fewest-arcs) path found with BFS.
//
// Prefer Dinic for large dense networks; EdmondsKarp's simpler
// augmentation loop is easier to trace and its shortest-path discipline
// gives the classical O(V * E^2) bound.
//
// Complexity: O(V * E^2)
// Memory:     O(V + E)
func EdmondsKarp(nw *Network, s, t int) (int64, error) {
	if err := checkNode(nw.n, s); err != nil {
		return 0, err
	}
	if err := checkNode(nw.n, t); err != nil {
		return 0, err
	}

	var total int64
	for {
		parentArc, bottle := bfsAugmentingPath(nw, s, t)
		if bottle == 0 {
			break
		}
		for cur := t; cur != s; {
			ai := parentArc[cur]
			if err := nw.push(ai, bottle); err != nil {
				return total, err
			}
			cur = nw.arcs[ai^1].to
		}
		if total > math.MaxInt64-bottle {
			return total, ErrOverflow
		}
		total += bottle
	}
	return total, nil
}

// bfsAugmentingPath finds the fewest-arcs s->t path with positive residual
// capacity. It returns, per node, the residual arc index used to reach it,
// plus the path's bottleneck capacity (0 when t is unreachable). Arcs are
// scanned in insertion order, so the first shortest path found is the same
// on every run.
func bfsAugmentingPath(nw *Network, s, t int) (parentArc []int, bottle int64) {
	parentArc = make([]int, nw.n)
	for i := range parentArc {
		parentArc[i] = -1
	}
	pathCap := make([]int64, nw.n)
	pathCap[s] = math.MaxInt64

	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.cap <= 0 || a.to == s || parentArc[a.to] >= 0 {
				continue
			}
			parentArc[a.to] = ai
			c := pathCap[u]
			if a.cap < c {
				c = a.cap
			}
			pathCap[a.to] = c
			if a.to == t {
				return parentArc, c
			}
			queue = append(queue, a.to)
		}
	}
	return parentArc, 0
}
