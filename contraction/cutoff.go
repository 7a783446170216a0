package contraction

import (
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// Sample is one observation taken by RunCutoff's monitor goroutine: how
// long the run had been going and the best cut value known at that
// instant.
type Sample struct {
	Elapsed time.Duration
	Value   float64
}

// RunCutoff runs the same repeat-loop as Run, but launches a second
// goroutine that samples the best-value-so-far on the given schedule of
// intervals. The two goroutines communicate only through a single atomic
// word holding the current best value's bit pattern; the working
// hypergraph is exclusively owned by the writer goroutine (this one) and
// is never touched by the monitor, matching the single-writer/single-
// reader concurrency model this package's core algorithms assume.
//
// Unlike Run, RunCutoff's sample timings depend on OS scheduling and are
// not reproducible across runs; only the returned cut and stats are.
func RunCutoff(h *hypergraph.Hypergraph, k int, trial TrialFunc, defaultCap DefaultCapFunc, intervals []time.Duration, opts ...Option) (mincut.Cut, Stats, []Sample, error) {
	o := resolveOptions(opts)

	capN := o.maxRuns
	if capN <= 0 {
		capN = defaultCap(h, k)
	}
	if capN < 1 {
		capN = 1
	}

	var bestBits atomic.Uint64
	bestBits.Store(math.Float64bits(mincut.Max().Value))

	samples := make([]Sample, 0, len(intervals))
	done := make(chan struct{})
	var wg sync.WaitGroup

	start := time.Now()
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, d := range intervals {
			timer := time.NewTimer(d)
			select {
			case <-done:
				timer.Stop()
				return
			case <-timer.C:
			}
			v := math.Float64frombits(bestBits.Load())
			samples = append(samples, Sample{Elapsed: time.Since(start), Value: v})
		}
	}()

	rng := rngFromSeed(o.seed)
	best := mincut.Max()
	var stats Stats
	var runErr error

	for best.Value > o.discoveryValue && stats.NumRuns < capN {
		stats.NumRuns++
		work := h.Clone()

		cut, err := trial(work, k, rng, &stats)
		if err != nil {
			runErr = err
			break
		}
		if cut.Less(best) {
			best = cut
			bestBits.Store(math.Float64bits(best.Value))
		}

		if o.verbosity > 0 {
			log.Printf("[%d/%d] got %g, min is %g, discovery value is %g",
				stats.NumRuns, capN, cut.Value, best.Value, o.discoveryValue)
		}
	}

	close(done)
	wg.Wait()

	if runErr != nil {
		return mincut.Cut{}, stats, nil, runErr
	}
	return best, stats, samples, nil
}
