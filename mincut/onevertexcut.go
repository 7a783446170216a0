package mincut

import "github.com/katalvlaran/hyperkcut/hypergraph"

// OneVertexCutValue returns the value of the cut (V \ {v}, {v}): the total
// weight of edges incident on v. Every edge incident on v crosses this
// cut, since a hyperedge always has at least two distinct endpoints and
// degenerate edges are assumed already removed.
//
// Complexity: O(degree(v)).
func OneVertexCutValue(h *hypergraph.Hypergraph, v int) (float64, error) {
	incident, err := h.EdgesIncidentOn(v)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range incident {
		w, err := h.EdgeWeight(e)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return total, nil
}

// OneVertexCut returns the full cut (V \ {v}, {v}), with each side
// expanded to the original vertices that contraction has folded into v
// and into the vertices on the other side.
//
// Complexity: O(size of the hypergraph).
func OneVertexCut(h *hypergraph.Hypergraph, v int) (Cut, error) {
	value, err := OneVertexCutValue(h, v)
	if err != nil {
		return Cut{}, err
	}

	side, err := h.VerticesWithin(v)
	if err != nil {
		return Cut{}, err
	}
	other := make([]int, 0, h.Size())
	for _, u := range h.Vertices() {
		if u == v {
			continue
		}
		within, err := h.VerticesWithin(u)
		if err != nil {
			return Cut{}, err
		}
		other = append(other, within...)
	}

	return Cut{
		Partitions: [][]int{append([]int(nil), side...), other},
		Value:      value,
	}, nil
}
