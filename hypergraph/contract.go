package hypergraph

// Contract returns a new hypergraph with edge e contracted: every vertex
// in e is merged into one freshly minted vertex, e itself disappears, and
// any other edge that was a subset of e's vertex set is removed (its
// incidence list would otherwise be empty). h is left untouched.
//
// Returns ErrUnknownEdge if e does not exist.
//
// Complexity: O(p), where p is the combined size of the hypergraph.
func (h *Hypergraph) Contract(e int) (*Hypergraph, error) {
	out := h.Clone()
	if err := out.ContractInPlace(e); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractInPlace contracts edge e in place, mutating h. See Contract for
// the semantics. Returns ErrUnknownEdge if e does not exist.
func (h *Hypergraph) ContractInPlace(e int) error {
	edge, ok := h.edges[e]
	if !ok {
		return ErrUnknownEdge
	}
	if len(edge) == 0 {
		delete(h.edges, e)
		delete(h.weights, e)
		return nil
	}

	endpoints := dedupSorted(edge)

	for _, v := range endpoints {
		delete(h.vertices, v)
	}
	delete(h.edges, e)
	delete(h.weights, e)

	for v, es := range h.vertices {
		h.vertices[v] = removeInt(es, e)
	}

	newVertex := h.nextVertexID
	h.nextVertexID++
	h.vertices[newVertex] = nil

	if h.trackWithin {
		var merged []int
		for _, v := range endpoints {
			merged = append(merged, h.within[v]...)
			delete(h.within, v)
		}
		h.within[newVertex] = merged
	}

	for edgeID, vs := range h.edges {
		before := len(vs)
		remaining := vs[:0]
		for _, v := range vs {
			if !containsInt(endpoints, v) {
				remaining = append(remaining, v)
			}
		}
		h.edges[edgeID] = remaining

		if len(remaining) == 0 {
			// Every vertex of edgeID was an endpoint of the contracted
			// edge; those vertices are already gone from h.vertices, so
			// there is nothing left to unlink.
			delete(h.edges, edgeID)
			delete(h.weights, edgeID)
			continue
		}
		if len(remaining) != before {
			h.edges[edgeID] = append(remaining, newVertex)
			h.vertices[newVertex] = append(h.vertices[newVertex], edgeID)
		}
	}

	return nil
}

// ContractSet contracts the vertex set vs as a single step: it is
// equivalent to adding a hyperedge over vs and then contracting that
// edge, but never mutates h. Returns ErrUnknownVertex if any vertex in vs
// is not live.
//
// Complexity: O(p + |vs|).
func (h *Hypergraph) ContractSet(vs []int) (*Hypergraph, error) {
	out := h.Clone()
	if err := out.ContractSetInPlace(vs); err != nil {
		return nil, err
	}
	return out, nil
}

// ContractSetInPlace contracts the vertex set vs in place. See ContractSet.
func (h *Hypergraph) ContractSetInPlace(vs []int) error {
	newEdge, err := h.AddHyperedge(vs, 1)
	if err != nil {
		return err
	}
	return h.ContractInPlace(newEdge)
}
