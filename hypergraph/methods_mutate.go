package hypergraph

// AddHyperedge adds a new hyperedge over vs with the given weight and
// returns its id. vs may contain duplicate vertex ids or fewer than two
// distinct vertices (see IsDegenerate); such edges are accepted and may be
// removed later by RemoveSingletonAndEmptyHyperedges.
//
// Returns ErrUnknownVertex if any vertex in vs is not live, or ErrBadWeight
// if weight is not strictly positive.
//
// Complexity: O(|vs|).
func (h *Hypergraph) AddHyperedge(vs []int, weight float64) (int, error) {
	if weight <= 0 {
		return 0, ErrBadWeight
	}
	for _, v := range vs {
		if _, ok := h.vertices[v]; !ok {
			return 0, ErrUnknownVertex
		}
	}

	id := h.nextEdgeID
	h.nextEdgeID++

	cp := append([]int(nil), vs...)
	h.edges[id] = cp
	h.weights[id] = weight
	for _, v := range cp {
		h.vertices[v] = append(h.vertices[v], id)
	}
	return id, nil
}

// RemoveHyperedge deletes edge e from the hypergraph. Returns
// ErrUnknownEdge if e does not exist. Complexity: O(|e|).
func (h *Hypergraph) RemoveHyperedge(e int) error {
	vs, ok := h.edges[e]
	if !ok {
		return ErrUnknownEdge
	}
	for _, v := range vs {
		h.vertices[v] = removeInt(h.vertices[v], e)
	}
	delete(h.edges, e)
	delete(h.weights, e)
	return nil
}

// RemoveVertex deletes vertex v and strips it from every edge incident on
// it; any edge left with fewer than two vertices is removed entirely.
// Returns ErrUnknownVertex if v is not live.
//
// Complexity: O(size of the hypergraph).
func (h *Hypergraph) RemoveVertex(v int) error {
	incident, ok := h.vertices[v]
	if !ok {
		return ErrUnknownVertex
	}

	var degenerate []int
	for _, e := range incident {
		h.edges[e] = removeInt(h.edges[e], v)
		if len(h.edges[e]) < 2 {
			degenerate = append(degenerate, e)
		}
	}
	delete(h.vertices, v)
	for _, e := range degenerate {
		// v has already been stripped from h.edges[e] above; the vertex
		// incidence lists of the edge's remaining endpoints still need
		// the edge removed, same as any other RemoveHyperedge.
		if _, ok := h.edges[e]; !ok {
			continue
		}
		for _, u := range h.edges[e] {
			h.vertices[u] = removeInt(h.vertices[u], e)
		}
		delete(h.edges, e)
		delete(h.weights, e)
	}
	return nil
}

// RemoveSingletonAndEmptyHyperedges removes every hyperedge with fewer
// than two vertices. Complexity: O(size of the hypergraph).
func (h *Hypergraph) RemoveSingletonAndEmptyHyperedges() {
	var degenerate []int
	for e, vs := range h.edges {
		if len(vs) < 2 {
			degenerate = append(degenerate, e)
		}
	}
	for _, e := range degenerate {
		_ = h.RemoveHyperedge(e)
	}
}

func removeInt(xs []int, target int) []int {
	out := xs[:0]
	for _, x := range xs {
		if x != target {
			out = append(out, x)
		}
	}
	return out
}
