package flow

import "math"

// Dinic computes the maximum flow from s to t in nw using Dinic's
// algorithm: repeated BFS level-graph construction followed by
// DFS-driven blocking flow.
//
// Complexity: O(V^2 * E)
// Memory:     O(V + E)
func Dinic(nw *Network, s, t int) (int64, error) {
	if err := checkNode(nw.n, s); err != nil {
		return 0, err
	}
	if err := checkNode(nw.n, t); err != nil {
		return 0, err
	}

	var total int64
	for {
		level := bfsLevels(nw, s)
		if level[t] < 0 {
			break
		}
		iter := make([]int, nw.n)
		for {
			pushed, err := dinicDFS(nw, s, t, math.MaxInt64, level, iter)
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
	}
	return total, nil
}

func bfsLevels(nw *Network, s int) []int {
	level := make([]int, nw.n)
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ai := range nw.adj[u] {
			a := nw.arcs[ai]
			if a.cap > 0 && level[a.to] < 0 {
				level[a.to] = level[u] + 1
				queue = append(queue, a.to)
			}
		}
	}
	return level
}

func dinicDFS(nw *Network, u, t int, limit int64, level, iter []int) (int64, error) {
	if u == t {
		return limit, nil
	}
	for ; iter[u] < len(nw.adj[u]); iter[u]++ {
		ai := nw.adj[u][iter[u]]
		a := nw.arcs[ai]
		if a.cap <= 0 || level[a.to] != level[u]+1 {
			continue
		}
		bound := limit
		if a.cap < bound {
			bound = a.cap
		}
		pushed, err := dinicDFS(nw, a.to, t, bound, level, iter)
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
