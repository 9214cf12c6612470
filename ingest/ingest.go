package ingest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/khalidsaidi/topoloom/core"
)

// ErrInvalidInput is returned for any dataset that violates the boundary
// schema: malformed JSON, non-integer or out-of-range endpoints,
// self-loops, or geographic arrays of the wrong length.
var ErrInvalidInput = errors.New("ingest: invalid dataset")

// Meta is the dataset's attribution block, passed through verbatim.
type Meta struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SourceURL   string `json:"sourceUrl"`
	LicenseName string `json:"licenseName"`
	LicenseURL  string `json:"licenseUrl"`
	Attribution string `json:"attribution"`
	Note        string `json:"note"`
}

// Geographic carries optional per-vertex coordinates, aligned with the
// dataset's node order.
type Geographic struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// Dataset is a parsed and validated dataset: the frozen graph, its
// attribution, and optional geographic extras.
type Dataset struct {
	Meta       Meta
	Graph      *core.Graph
	Geographic *Geographic
}

// datasetJSON mirrors the wire schema. Edge endpoints decode as
// json.Number so non-integer values can be rejected instead of silently
// truncated.
type datasetJSON struct {
	Meta  Meta            `json:"meta"`
	Nodes []string        `json:"nodes"`
	Edges [][]json.Number `json:"edges"`
	Extras *struct {
		Geographic *Geographic `json:"geographic"`
	} `json:"extras"`
}

// ParseDataset decodes and validates one dataset document, producing the
// graph the kernel consumes. Edges are normalized to [min, max] endpoint
// order, deduplicated, and sorted lexicographically before ids are
// assigned, so the same dataset always produces the same graph.
func ParseDataset(data []byte) (*Dataset, error) {
	var raw datasetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	n := len(raw.Nodes)
	seen := map[[2]int]bool{}
	var pairs [][2]int
	for i, e := range raw.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrInvalidInput, i, len(e))
		}
		u, err := intEndpoint(e[0])
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrInvalidInput, i, err)
		}
		v, err := intEndpoint(e[1])
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrInvalidInput, i, err)
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge %d endpoints [%d,%d] out of range [0,%d)", ErrInvalidInput, i, u, v, n)
		}
		if u == v {
			return nil, fmt.Errorf("%w: edge %d is a self-loop at %d", ErrInvalidInput, i, u)
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, key)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	var geo *Geographic
	if raw.Extras != nil && raw.Extras.Geographic != nil {
		geo = raw.Extras.Geographic
		if len(geo.X) != n || len(geo.Y) != n {
			return nil, fmt.Errorf("%w: geographic arrays have lengths %d/%d, want %d",
				ErrInvalidInput, len(geo.X), len(geo.Y), n)
		}
	}

	b := core.NewGraphBuilder()
	for _, label := range raw.Nodes {
		b.AddVertex(label)
	}
	for _, p := range pairs {
		b.AddEdge(core.VertexID(p[0]), core.VertexID(p[1]), false)
	}

	return &Dataset{Meta: raw.Meta, Graph: b.Build(), Geographic: geo}, nil
}

// intEndpoint parses a JSON number as an exact integer.
func intEndpoint(num json.Number) (int, error) {
	i, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("endpoint %q is not an integer", num.String())
	}
	return int(i), nil
}
