package builder

import (
	"fmt"
	"math/rand"

	"github.com/khalidsaidi/topoloom/core"
)

const maxStubMatchingAttempts = 100

// RandomSparse returns an Erdos-Renyi style G(n, p) graph: n vertices, each
// of the n*(n-1)/2 possible undirected edges included independently with
// probability p. rng must be non-nil and seeded by the caller for
// reproducibility; the same rng state always yields the same realization
// since candidate pairs are visited in a fixed (i, j) order.
func RandomSparse(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}
	if rng == nil {
		return nil, fmt.Errorf("builder: RandomSparse requires a non-nil rng")
	}
	b := core.NewGraphBuilder()
	vs := labelVertices(b, n, "v")
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				b.AddEdge(vs[i], vs[j], false)
			}
		}
	}
	return b.Build(), nil
}

// RandomRegular returns an undirected d-regular simple graph on n vertices
// via stub-matching with bounded reshuffle retries: stubs are shuffled,
// the resulting pairing validated against the simple-graph constraints (no
// loops, no parallel edges) without mutating anything, and only a valid
// pairing is materialized into edges. Fails with ErrConstructFailed if no
// valid pairing is found within the retry budget.
func RandomRegular(n, d int, rng *rand.Rand) (*core.Graph, error) {
	if n < 1 {
		return nil, ErrTooFewVertices
	}
	if d < 0 || d >= n {
		return nil, ErrTooFewVertices
	}
	if (n*d)%2 != 0 {
		return nil, ErrTooFewVertices
	}
	if rng == nil {
		return nil, fmt.Errorf("builder: RandomRegular requires a non-nil rng")
	}

	b := core.NewGraphBuilder()
	vs := labelVertices(b, n, "v")

	stubCount := n * d
	if stubCount == 0 {
		return b.Build(), nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]struct{}, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if _, dup := seen[key]; dup {
				valid = false
				break
			}
			seen[key] = struct{}{}
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			b.AddEdge(vs[stubs[i]], vs[stubs[i+1]], false)
		}
		return b.Build(), nil
	}

	return nil, ErrConstructFailed
}
