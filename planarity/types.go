package planarity

import "github.com/khalidsaidi/topoloom/core"

// SelfLoopPolicy controls how self-loops are handled before testing.
type SelfLoopPolicy int

const (
	// SelfLoopsKeep keeps self-loops in the embedding, each listed twice
	// in a row in its vertex's rotation.
	SelfLoopsKeep SelfLoopPolicy = iota
	// SelfLoopsIgnore strips self-loops before the test and reports them
	// in Result.IgnoredSelfLoops.
	SelfLoopsIgnore
)

// WitnessKind tags the forbidden-subdivision shape of a nonplanarity
// witness.
type WitnessKind string

const (
	WitnessK5  WitnessKind = "K5"
	WitnessK33 WitnessKind = "K3,3"
)

// Witness is a Kuratowski-style certificate: the listed edges form a
// subgraph homeomorphic to K5 or K3,3.
type Witness struct {
	Kind  WitnessKind
	Edges []core.EdgeID
}

// Result is the outcome of Test.
type Result struct {
	Planar            bool
	Embedding         core.RotationSystem
	IgnoredSelfLoops  []core.EdgeID
	Witness           *Witness
}

// Option configures Test.
type Option func(*options)

type options struct {
	forceUndirected bool
	selfLoops       SelfLoopPolicy
}

func newOptions(opts []Option) *options {
	o := &options{selfLoops: SelfLoopsKeep}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithForceUndirected, when true, tells Test to project a directed graph to
// its undirected skeleton rather than reject it with ErrUnsupportedInput.
func WithForceUndirected(v bool) Option {
	return func(o *options) { o.forceUndirected = v }
}

// WithSelfLoopPolicy selects how self-loops are treated; the default is
// SelfLoopsKeep.
func WithSelfLoopPolicy(p SelfLoopPolicy) Option {
	return func(o *options) { o.selfLoops = p }
}
