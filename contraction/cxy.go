package contraction

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// CXYMinCut returns a k-cut of h found by the randomized contraction
// algorithm of [CXY'18]: repeatedly sample a hyperedge with probability
// proportional to w(e)*cxyDelta(n,|e|,k) and contract it, until every
// hyperedge's sampling weight is zero. h is not modified.
//
// Returns ErrBadK if k < 2 or k > h.NumVertices().
//
// Complexity per trial: O(np), where p is the size of h.
func CXYMinCut(h *hypergraph.Hypergraph, k int, opts ...Option) (mincut.Cut, Stats, error) {
	if err := validateK(h, k); err != nil {
		return mincut.Cut{}, Stats{}, err
	}
	return Run(h, k, cxyTrial, cxyDefaultCap, opts...)
}

// CXYMinCutValue is CXYMinCut, discarding the partitions and statistics.
func CXYMinCutValue(h *hypergraph.Hypergraph, k int, opts ...Option) (float64, error) {
	cut, _, err := CXYMinCut(h, k, opts...)
	return cut.Value, err
}

func cxyTrial(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *Stats) (mincut.Cut, error) {
	minSoFar := h.TotalEdgeWeight()

	for {
		edgeIDs := h.EdgeIDs()
		if len(edgeIDs) == 0 {
			// No hyperedge survives, so the current partition cuts nothing.
			minSoFar = 0
			break
		}

		weights := make([]float64, len(edgeIDs))
		var total float64
		for i, e := range edgeIDs {
			vs, err := h.Edge(e)
			if err != nil {
				return mincut.Cut{}, err
			}
			w, err := h.EdgeWeight(e)
			if err != nil {
				return mincut.Cut{}, err
			}
			weights[i] = cxyDelta(h.NumVertices(), len(vs), k) * w
			total += weights[i]
		}

		if total == 0 {
			if cut := h.TotalEdgeWeight(); cut < minSoFar {
				minSoFar = cut
			}
			break
		}

		sampled := edgeIDs[sampleWeightedIndex(rng, weights, total)]
		if err := h.ContractInPlace(sampled); err != nil {
			return mincut.Cut{}, err
		}
		stats.NumContractions++
	}

	// Every remaining delta is zero, so every surviving hyperedge crosses
	// every component; merge any excess partitions arbitrarily without
	// changing the cut value.
	for h.NumVertices() > k {
		vs := h.Vertices()
		if err := h.ContractSetInPlace(vs[:2]); err != nil {
			return mincut.Cut{}, err
		}
		stats.NumContractions++
	}

	partitions := make([][]int, 0, h.NumVertices())
	for _, v := range h.Vertices() {
		within, err := h.VerticesWithin(v)
		if err != nil {
			return mincut.Cut{}, err
		}
		partitions = append(partitions, append([]int(nil), within...))
	}

	return mincut.Cut{Partitions: partitions, Value: minSoFar}, nil
}

func cxyDefaultCap(h *hypergraph.Hypergraph, k int) int {
	n := h.NumVertices()
	runs := ncr(n, 2*(k-1))
	runs *= uint64(math.Ceil(math.Log(float64(n))))
	if runs < 1 {
		runs = 1
	}
	return int(runs)
}
