package contraction

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// FPZMinCut returns a k-cut value of h found by the branching contraction
// algorithm of [FPZ'19]: recursively strip k-spanning edges, contract a
// weight-sampled edge, and with a "redo" probability recurse down both the
// contracted and un-contracted branches, taking the minimum. h is not
// modified.
//
// This algorithm's recursive structure never tracks vertices-within (the
// original source does not either); the returned Cut carries a value but
// no partitions.
//
// Returns ErrBadK if k < 2 or k > h.NumVertices().
//
// Complexity per trial: O(n) expected recursion depth, each level O(p).
func FPZMinCut(h *hypergraph.Hypergraph, k int, opts ...Option) (mincut.Cut, Stats, error) {
	if err := validateK(h, k); err != nil {
		return mincut.Cut{}, Stats{}, err
	}
	return Run(h, k, fpzTrial, fpzDefaultCap, opts...)
}

// FPZMinCutValue is FPZMinCut, discarding the statistics.
func FPZMinCutValue(h *hypergraph.Hypergraph, k int, opts ...Option) (float64, error) {
	cut, _, err := FPZMinCut(h, k, opts...)
	return cut.Value, err
}

func fpzTrial(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *Stats) (mincut.Cut, error) {
	h.DisableWithinTracking()
	value, err := fpzBranchingContract(h, k, 0, rng, stats)
	if err != nil {
		return mincut.Cut{}, err
	}
	return mincut.Cut{Value: value}, nil
}

// fpzBranchingContract is the recursive inner routine. It owns h
// exclusively and mutates it (removing k-spanning edges) as part of its
// work, matching the reference algorithm's in-place edge removal.
func fpzBranchingContract(h *hypergraph.Hypergraph, k int, accumulated float64, rng *rand.Rand, stats *Stats) (float64, error) {
	n := h.NumVertices()

	for _, e := range h.EdgeIDs() {
		vs, err := h.Edge(e)
		if err != nil {
			return 0, err
		}
		if len(vs) >= n-k+2 {
			w, err := h.EdgeWeight(e)
			if err != nil {
				return 0, err
			}
			accumulated += w
			if err := h.RemoveHyperedge(e); err != nil {
				return 0, err
			}
		}
	}

	if h.NumEdges() == 0 {
		return accumulated, nil
	}

	edgeIDs := h.EdgeIDs()
	weights := make([]float64, len(edgeIDs))
	var total float64
	for i, e := range edgeIDs {
		w, err := h.EdgeWeight(e)
		if err != nil {
			return 0, err
		}
		weights[i] = w
		total += w
	}
	sampled := edgeIDs[sampleWeightedIndex(rng, weights, total)]

	sampledVertices, err := h.Edge(sampled)
	if err != nil {
		return 0, err
	}
	redo := 1 - cxyDelta(n, len(sampledVertices), k)

	contracted := h.Clone()
	if err := contracted.ContractInPlace(sampled); err != nil {
		return 0, err
	}
	stats.NumContractions++

	if rng.Float64() < redo {
		left, err := fpzBranchingContract(contracted, k, accumulated, rng, stats)
		if err != nil {
			return 0, err
		}
		right, err := fpzBranchingContract(h, k, accumulated, rng, stats)
		if err != nil {
			return 0, err
		}
		return math.Min(left, right), nil
	}
	return fpzBranchingContract(contracted, k, accumulated, rng, stats)
}

func fpzDefaultCap(h *hypergraph.Hypergraph, k int) int {
	_ = k
	n := h.NumVertices()
	logn := math.Ceil(math.Log(float64(n)))
	capN := int(logn * logn)
	if capN < 1 {
		capN = 1
	}
	return capN
}
