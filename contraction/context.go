package contraction

// Stats records the bookkeeping a randomized run exposes back to its
// caller: how many elementary contractions it performed across every
// trial, and how many trials it ran before stopping.
type Stats struct {
	NumContractions uint64
	NumRuns         int
}

// Options configures a randomized contraction run. Build one with
// WithSeed, WithMaxRuns, WithDiscoveryValue, and WithVerbosity, applied in
// the order given to the entry-point functions.
type Options struct {
	seed           int64
	maxRuns        int
	discoveryValue float64
	verbosity      int
}

// Option customizes an Options value.
type Option func(*Options)

// WithSeed fixes the PRNG seed driving every trial of a run. seed == 0 (the
// zero value) selects a fixed default seed, never a time-based source, so
// omitting this option still yields a reproducible run.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithMaxRuns caps the number of trials the runner will execute. n <= 0
// restores the algorithm's default high-probability cap.
func WithMaxRuns(n int) Option {
	return func(o *Options) { o.maxRuns = n }
}

// WithDiscoveryValue stops the runner as soon as a trial finds a cut whose
// value is at most v, turning it into a time-to-discovery probe when
// paired with a large WithMaxRuns.
func WithDiscoveryValue(v float64) Option {
	return func(o *Options) { o.discoveryValue = v }
}

// WithVerbosity controls per-trial progress logging: 0 (the default) is
// silent, 1 or higher logs one line per trial via log.Printf.
func WithVerbosity(level int) Option {
	return func(o *Options) { o.verbosity = level }
}

func resolveOptions(opts []Option) *Options {
	o := &Options{
		seed:           0,
		maxRuns:        0,
		discoveryValue: 0,
		verbosity:      0,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
