package order

import "github.com/katalvlaran/hyperkcut/hypergraph"

// ordering computes a vertex ordering of h starting at vertex a, using
// rule to update tightness whenever a vertex is newly ordered. It returns
// the ordering (a first, then at each step an unordered vertex of maximum
// tightness at that moment) and the tightness value each vertex had at the
// moment it was appended.
//
// The returned tightness is halved before being reported: both the
// maximum-adjacency and tight-ordering rules may fire on the same vertex
// within a single ordering call (this is exactly what the Queyranne rule
// does, by design), and the heap key accumulates both contributions. Only
// the Queyranne caller ever inspects these values; maximum-adjacency and
// tight orderings discard them.
//
// Complexity: O(p), where p is the combined size of h, assuming rule runs
// in time linear to the number of edges incident on its vertex argument.
func ordering(h *hypergraph.Hypergraph, a int, rule tighten) ([]int, []float64, error) {
	if h.NumVertices() == 0 {
		return nil, nil, ErrEmptyHypergraph
	}
	if _, err := h.EdgesIncidentOn(a); err != nil {
		return nil, nil, ErrUnknownStartVertex
	}

	result := []int{a}
	tightness := []float64{0}

	var rest []int
	for _, v := range h.Vertices() {
		if v != a {
			rest = append(rest, v)
		}
	}

	ctx, err := newContext(h, rest, 2*h.NumEdges()+1)
	if err != nil {
		return nil, nil, err
	}

	tighten := func(v int) error {
		ctx.markVertexUsed(v)
		return rule(h, ctx, v)
	}

	if err := tighten(a); err != nil {
		return nil, nil, err
	}

	for len(result) < h.NumVertices() {
		key, v, err := ctx.heap.PopKeyVal()
		if err != nil {
			return nil, nil, err
		}
		result = append(result, v)
		tightness = append(tightness, key/2.0)
		if err := tighten(v); err != nil {
			return nil, nil, err
		}
	}

	return result, tightness, nil
}

// MaximumAdjacencyOrdering returns a KW'96 maximum-adjacency ordering of
// h starting at vertex a: tightness of an unordered vertex is the total
// weight of edges connecting it to the ordering so far.
func MaximumAdjacencyOrdering(h *hypergraph.Hypergraph, a int) ([]int, error) {
	result, _, err := ordering(h, a, maximumAdjacencyTighten)
	return result, err
}

// TightOrdering returns an MW'00 tight ordering of h starting at vertex a:
// tightness of an unordered vertex only rises when one of its edges
// becomes tight (every other endpoint already ordered).
func TightOrdering(h *hypergraph.Hypergraph, a int) ([]int, error) {
	result, _, err := ordering(h, a, tightOrderingTighten)
	return result, err
}

// QueyranneOrdering returns a Q'98 ordering of h starting at vertex a, the
// combination of the maximum-adjacency and tight-ordering rules.
func QueyranneOrdering(h *hypergraph.Hypergraph, a int) ([]int, error) {
	result, _, err := ordering(h, a, queyranneTighten)
	return result, err
}

// QueyranneOrderingWithTightness is QueyranneOrdering, additionally
// returning the tightness each vertex had when it was appended. CX(epsilon)
// uses these values to find alpha-tight groups.
func QueyranneOrderingWithTightness(h *hypergraph.Hypergraph, a int) ([]int, []float64, error) {
	return ordering(h, a, queyranneTighten)
}
