package mincut

import (
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/order"
)

// orderingFunc is the shape shared by order.MaximumAdjacencyOrdering,
// order.TightOrdering, and order.QueyranneOrdering.
type orderingFunc func(h *hypergraph.Hypergraph, a int) ([]int, error)

// vertexOrderingMinCutFromVertex repeatedly takes an ordering of the
// current working hypergraph, records the cut isolating the ordering's
// last vertex, then merges the ordering's last two vertices — the
// classic Stoer-Wagner-style "phase" for hypergraphs. a is the fixed
// starting vertex used by every phase; it survives every phase but the
// last (a only appears among the last two ordered vertices once the
// working hypergraph is down to its final two vertices).
//
// Complexity: O(n * p), where n is the vertex count and p the size of h.
func vertexOrderingMinCutFromVertex(h *hypergraph.Hypergraph, a int, orderFn orderingFunc) (Cut, error) {
	work := h.Clone()
	work.RemoveSingletonAndEmptyHyperedges()

	best := Max()
	for work.NumVertices() > 1 {
		ord, err := orderFn(work, a)
		if err != nil {
			return Cut{}, err
		}
		last := ord[len(ord)-1]
		penultimate := ord[len(ord)-2]

		cutOfPhase, err := OneVertexCut(work, last)
		if err != nil {
			return Cut{}, err
		}

		if err := work.ContractSetInPlace([]int{penultimate, last}); err != nil {
			return Cut{}, err
		}

		if cutOfPhase.Less(best) {
			best = cutOfPhase
		}
	}
	return best, nil
}

func vertexOrderingMinCut(h *hypergraph.Hypergraph, orderFn orderingFunc) (Cut, error) {
	vertices := h.Vertices()
	if len(vertices) == 0 {
		return Cut{}, hypergraph.ErrNoVertices
	}
	return vertexOrderingMinCutFromVertex(h, vertices[0], orderFn)
}

// KWMinCut returns the minimum cut of h found by repeated
// maximum-adjacency ordering and pendant-pair merging. h is not modified.
func KWMinCut(h *hypergraph.Hypergraph) (Cut, error) {
	return vertexOrderingMinCut(h, order.MaximumAdjacencyOrdering)
}

// KWMinCutValue is KWMinCut, discarding the partitions.
func KWMinCutValue(h *hypergraph.Hypergraph) (float64, error) {
	cut, err := KWMinCut(h)
	return cut.Value, err
}

// MWMinCut returns the minimum cut of h found by repeated tight ordering
// and pendant-pair merging. h is not modified.
func MWMinCut(h *hypergraph.Hypergraph) (Cut, error) {
	return vertexOrderingMinCut(h, order.TightOrdering)
}

// MWMinCutValue is MWMinCut, discarding the partitions.
func MWMinCutValue(h *hypergraph.Hypergraph) (float64, error) {
	cut, err := MWMinCut(h)
	return cut.Value, err
}

// QMinCut returns the minimum cut of h found by repeated Queyranne
// ordering and pendant-pair merging. h is not modified.
func QMinCut(h *hypergraph.Hypergraph) (Cut, error) {
	return vertexOrderingMinCut(h, order.QueyranneOrdering)
}

// QMinCutValue is QMinCut, discarding the partitions.
func QMinCutValue(h *hypergraph.Hypergraph) (float64, error) {
	cut, err := QMinCut(h)
	return cut.Value, err
}
