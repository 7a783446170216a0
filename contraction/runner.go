package contraction

import (
	"log"
	"math/rand"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// TrialFunc is one randomized trial of a contraction algorithm. It owns h
// exclusively (the runner always passes a fresh clone) and may mutate it
// freely; it records every contraction it performs into stats and returns
// a candidate k-cut.
type TrialFunc func(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *Stats) (mincut.Cut, error)

// DefaultCapFunc computes an algorithm-specific, high-probability run cap
// from the input hypergraph and k.
type DefaultCapFunc func(h *hypergraph.Hypergraph, k int) int

// Run is the shared repeat-loop every randomized algorithm in this package
// is built on: while the best cut found so far is above the discovery
// value and the run count is below the cap, clone h, execute one trial on
// the clone, and fold its result into the running best. h is never
// mutated by Run itself.
func Run(h *hypergraph.Hypergraph, k int, trial TrialFunc, defaultCap DefaultCapFunc, opts ...Option) (mincut.Cut, Stats, error) {
	o := resolveOptions(opts)

	cap := o.maxRuns
	if cap <= 0 {
		cap = defaultCap(h, k)
	}
	if cap < 1 {
		cap = 1
	}

	rng := rngFromSeed(o.seed)
	best := mincut.Max()
	var stats Stats

	for best.Value > o.discoveryValue && stats.NumRuns < cap {
		stats.NumRuns++
		work := h.Clone()

		cut, err := trial(work, k, rng, &stats)
		if err != nil {
			return mincut.Cut{}, stats, err
		}
		if cut.Less(best) {
			best = cut
		}

		if o.verbosity > 0 {
			log.Printf("[%d/%d] got %g, min is %g, discovery value is %g",
				stats.NumRuns, cap, cut.Value, best.Value, o.discoveryValue)
		}
	}

	return best, stats, nil
}
