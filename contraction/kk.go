package contraction

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

// kkAlpha is the slack factor in KK's contraction threshold; the reference
// implementation notes it could be tuned to trade exactness for speed but
// fixes it at 1.5 for the exact algorithm.
const kkAlpha = 1.5

// KKMinCut returns a k-cut of h found by the algorithm of [KK'14]: weight-
// sample and contract edges until the vertex count drops to about
// alpha*k*rank(h), then repeatedly throw the remaining vertices into k
// uniformly random non-empty buckets and take the best resulting cut. h is
// not modified.
//
// Success probability degrades as rank(h) grows; this is a known property
// of the algorithm, not a bug.
//
// Returns ErrBadK if k < 2 or k > h.NumVertices().
func KKMinCut(h *hypergraph.Hypergraph, k int, opts ...Option) (mincut.Cut, Stats, error) {
	if err := validateK(h, k); err != nil {
		return mincut.Cut{}, Stats{}, err
	}
	return Run(h, k, kkTrial, kkDefaultCap, opts...)
}

// KKMinCutValue is KKMinCut, discarding the partitions and statistics.
func KKMinCutValue(h *hypergraph.Hypergraph, k int, opts ...Option) (float64, error) {
	cut, _, err := KKMinCut(h, k, opts...)
	return cut.Value, err
}

func kkTrial(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *Stats) (mincut.Cut, error) {
	r := h.Rank()

	for float64(h.NumVertices()) > kkAlpha*float64(k)*float64(r) {
		if h.NumEdges() == 0 {
			break
		}
		edgeIDs := h.EdgeIDs()
		weights := make([]float64, len(edgeIDs))
		var total float64
		for i, e := range edgeIDs {
			w, err := h.EdgeWeight(e)
			if err != nil {
				return mincut.Cut{}, err
			}
			weights[i] = w
			total += w
		}
		sampled := edgeIDs[sampleWeightedIndex(rng, weights, total)]
		if err := h.ContractInPlace(sampled); err != nil {
			return mincut.Cut{}, err
		}
		stats.NumContractions++
	}

	vertices := h.Vertices()
	shuffleIntsInPlace(vertices, rng)

	// Randomly place each contracted vertex in one of the k buckets; retry
	// if any bucket ends up empty.
	var buckets [][]int
	for {
		buckets = make([][]int, k)
		for _, v := range vertices {
			b := rng.Intn(k)
			buckets[b] = append(buckets[b], v)
		}
		empty := false
		for _, b := range buckets {
			if len(b) == 0 {
				empty = true
				break
			}
		}
		if !empty {
			break
		}
	}

	bucketOf := make(map[int]int, len(vertices))
	for bi, b := range buckets {
		for _, v := range b {
			bucketOf[v] = bi
		}
	}

	var cutValue float64
	for _, e := range h.EdgeIDs() {
		vs, err := h.Edge(e)
		if err != nil {
			return mincut.Cut{}, err
		}
		if !edgeEntirelyInsideSomeBucket(vs, bucketOf) {
			w, err := h.EdgeWeight(e)
			if err != nil {
				return mincut.Cut{}, err
			}
			cutValue += w
		}
	}

	partitions := make([][]int, k)
	for bi, b := range buckets {
		for _, v := range b {
			within, err := h.VerticesWithin(v)
			if err != nil {
				return mincut.Cut{}, err
			}
			partitions[bi] = append(partitions[bi], within...)
		}
	}

	return mincut.Cut{Partitions: partitions, Value: cutValue}, nil
}

func edgeEntirelyInsideSomeBucket(vs []int, bucketOf map[int]int) bool {
	if len(vs) == 0 {
		return true
	}
	first := bucketOf[vs[0]]
	for _, v := range vs {
		if bucketOf[v] != first {
			return false
		}
	}
	return true
}

func kkDefaultCap(h *hypergraph.Hypergraph, k int) int {
	r := h.Rank()
	n := h.NumVertices()
	runs := math.Pow(2, float64(r)) * math.Pow(float64(n), float64(k)) * math.Log(float64(n))
	if runs < 1 {
		runs = 1
	}
	if runs > float64(math.MaxInt32) {
		runs = float64(math.MaxInt32)
	}
	return int(runs)
}
