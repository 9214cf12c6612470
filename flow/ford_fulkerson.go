package flow

import "math"

// FordFulkerson computes the maximum flow from s to t in nw by repeatedly
// augmenting along any residual path found with DFS.
//
// Use it when capacities are small integers and the network is tiny; the
// number of augmentations is bounded only by the flow value itself, so
// EdmondsKarp or Dinic should be preferred everywhere else.
//
// Complexity: O(E * F) where F is the max-flow value
// Memory:     O(V + E)
func FordFulkerson(nw *Network, s, t int) (int64, error) {
	if err := checkNode(nw.n, s); err != nil {
		return 0, err
	}
	if err := checkNode(nw.n, t); err != nil {
		return 0, err
	}

	var total int64
	for {
		visited := make([]bool, nw.n)
		pushed, err := dfsFindPath(nw, s, t, math.MaxInt64, visited)
		if err != nil {
			return total, err
		}
		if pushed == 0 {
			break
		}
		if total > math.MaxInt64-pushed {
			return total, ErrOverflow
		}
		total += pushed
	}
	return total, nil
}

// dfsFindPath walks the residual graph depth-first from u toward t,
// pushing the bottleneck flow on the way back up the recursion. Arcs are
// scanned in insertion order for determinism.
func dfsFindPath(nw *Network, u, t int, limit int64, visited []bool) (int64, error) {
	if u == t {
		return limit, nil
	}
	visited[u] = true
	for _, ai := range nw.adj[u] {
		a := nw.arcs[ai]
		if a.cap <= 0 || visited[a.to] {
			continue
		}
		bound := limit
		if a.cap < bound {
			bound = a.cap
		}
		pushed, err := dfsFindPath(nw, a.to, t, bound, visited)
		if err != nil {
			return 0, err
		}
		if pushed > 0 {
			if err := nw.push(ai, pushed); err != nil {
				return 0, err
			}
			return pushed, nil
		}
	}
	return 0, nil
}
