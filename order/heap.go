package order

import (
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/pq"
)

// tightnessHeap is the common surface that both priority-key structures
// are driven through. A BucketHeap's O(1) increment only covers
// unweighted hypergraphs, so weighted inputs fall back to a WeightHeap;
// newTightnessHeap picks the right one transparently.
type tightnessHeap interface {
	Increment(value int, amount float64) error
	PopKeyVal() (float64, int, error)
}

// bucketAdapter drives a pq.BucketHeap through tightnessHeap. amount is
// ignored: every caller of the unweighted path only ever increments by
// exactly 1.
type bucketAdapter struct {
	heap *pq.BucketHeap
}

func (a bucketAdapter) Increment(value int, _ float64) error {
	return a.heap.Increment(value)
}

func (a bucketAdapter) PopKeyVal() (float64, int, error) {
	key, value, err := a.heap.PopKeyVal()
	return float64(key), value, err
}

// weightAdapter drives a pq.WeightHeap through tightnessHeap.
type weightAdapter struct {
	heap *pq.WeightHeap
}

func (a weightAdapter) Increment(value int, amount float64) error {
	return a.heap.Increment(value, amount)
}

func (a weightAdapter) PopKeyVal() (float64, int, error) {
	return a.heap.PopKeyVal()
}

// isUnweighted reports whether every edge of h has weight 1, the
// convention this module uses for "unweighted".
func isUnweighted(h *hypergraph.Hypergraph) bool {
	for _, e := range h.EdgeIDs() {
		w, err := h.EdgeWeight(e)
		if err != nil || w != 1 {
			return false
		}
	}
	return true
}

// newTightnessHeap builds a BucketHeap-backed heap for unweighted
// hypergraphs (O(1) increments) and a WeightHeap-backed heap otherwise.
// capacity bounds the number of distinct keys a BucketHeap will ever need;
// it is unused by the WeightHeap path.
func newTightnessHeap(h *hypergraph.Hypergraph, vertices []int, capacity int) (tightnessHeap, error) {
	if isUnweighted(h) {
		bh, err := pq.NewBucketHeap(vertices, capacity)
		if err != nil {
			return nil, err
		}
		return bucketAdapter{bh}, nil
	}
	wh, err := pq.NewWeightHeap(vertices)
	if err != nil {
		return nil, err
	}
	return weightAdapter{wh}, nil
}
