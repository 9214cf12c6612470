package builder

// Option configures optional behavior of a generator. Most generators take
// none; RandomSparse and RandomRegular take no Option and are seeded through
// their explicit *rand.Rand argument instead, so Option only carries
// labeling behavior shared by the deterministic generators.
type Option func(*options)

type options struct {
	labelPrefix string
}

func newOptions(opts []Option) *options {
	o := &options{labelPrefix: "v"}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLabelPrefix overrides the default "v" prefix used when a generator
// labels its vertices with a string like "v0", "v1", ....
func WithLabelPrefix(prefix string) Option {
	return func(o *options) {
		o.labelPrefix = prefix
	}
}
