package hypergraph

// NumVertices returns the number of live vertices. Complexity: O(1).
func (h *Hypergraph) NumVertices() int {
	return len(h.vertices)
}

// NumEdges returns the number of hyperedges. Complexity: O(1).
func (h *Hypergraph) NumEdges() int {
	return len(h.edges)
}

// Size returns the combined size of all hyperedges (sum of |e| over e).
// Complexity: O(num_edges).
func (h *Hypergraph) Size() int {
	total := 0
	for _, vs := range h.edges {
		total += len(vs)
	}
	return total
}

// Rank returns the size of the largest hyperedge, or 0 if there are no
// edges. Complexity: O(num_edges).
func (h *Hypergraph) Rank() int {
	rank := 0
	for _, vs := range h.edges {
		if len(vs) > rank {
			rank = len(vs)
		}
	}
	return rank
}

// Vertices returns the live vertex ids in unspecified order.
// Complexity: O(num_vertices).
func (h *Hypergraph) Vertices() []int {
	out := make([]int, 0, len(h.vertices))
	for v := range h.vertices {
		out = append(out, v)
	}
	return out
}

// EdgeIDs returns the live edge ids in unspecified order.
// Complexity: O(num_edges).
func (h *Hypergraph) EdgeIDs() []int {
	out := make([]int, 0, len(h.edges))
	for e := range h.edges {
		out = append(out, e)
	}
	return out
}

// Edge returns the vertex list of edge e. The returned slice must not be
// mutated by the caller. Returns ErrUnknownEdge if e does not exist.
// Complexity: O(1).
func (h *Hypergraph) Edge(e int) ([]int, error) {
	vs, ok := h.edges[e]
	if !ok {
		return nil, ErrUnknownEdge
	}
	return vs, nil
}

// EdgesIncidentOn returns the list of edge ids incident on v. The returned
// slice must not be mutated by the caller. Returns ErrUnknownVertex if v is
// not live. Complexity: O(1).
func (h *Hypergraph) EdgesIncidentOn(v int) ([]int, error) {
	es, ok := h.vertices[v]
	if !ok {
		return nil, ErrUnknownVertex
	}
	return es, nil
}

// Degree returns the number of edges incident on v.
// Returns ErrUnknownVertex if v is not live. Complexity: O(1).
func (h *Hypergraph) Degree(v int) (int, error) {
	es, ok := h.vertices[v]
	if !ok {
		return 0, ErrUnknownVertex
	}
	return len(es), nil
}

// EdgeWeight returns the weight of edge e (1 for every edge of an
// unweighted hypergraph). Returns ErrUnknownEdge if e does not exist.
// Complexity: O(1).
func (h *Hypergraph) EdgeWeight(e int) (float64, error) {
	w, ok := h.weights[e]
	if !ok {
		return 0, ErrUnknownEdge
	}
	return w, nil
}

// TotalEdgeWeight returns the sum of the weights of every edge currently
// in the hypergraph. Complexity: O(num_edges).
func (h *Hypergraph) TotalEdgeWeight() float64 {
	var total float64
	for _, w := range h.weights {
		total += w
	}
	return total
}

// VerticesWithin returns the original vertex ids that have been collapsed
// into v by contraction (a singleton {v} if v has never been a contraction
// target). Returns ErrUnknownVertex if v is not live.
// Complexity: O(1) to look up, O(|result|) to read.
func (h *Hypergraph) VerticesWithin(v int) ([]int, error) {
	if _, ok := h.vertices[v]; !ok {
		return nil, ErrUnknownVertex
	}
	return h.within[v], nil
}

// NextVertexID returns the id that the next contraction will mint. Exposed
// for callers that need a vertex id guaranteed not to collide with any
// live vertex.
func (h *Hypergraph) NextVertexID() int {
	return h.nextVertexID
}

// IsValid checks incidence symmetry: for every (v, e) pair, v is in e's
// vertex list iff e is in v's incidence list. Intended for tests and debug
// assertions, not for hot paths. Complexity: O(p).
func (h *Hypergraph) IsValid() bool {
	for v, incident := range h.vertices {
		for _, e := range incident {
			vs, ok := h.edges[e]
			if !ok {
				return false
			}
			if !containsInt(vs, v) {
				return false
			}
		}
	}
	for e, vs := range h.edges {
		for _, v := range vs {
			incident, ok := h.vertices[v]
			if !ok {
				return false
			}
			if !containsInt(incident, e) {
				return false
			}
		}
	}
	return true
}

// Equal reports whether h and other have pointwise-equal vertex-incidence
// and edge-incidence maps. Order within incidence lists does not matter;
// the vertices-within bookkeeping and id counters are ignored.
func (h *Hypergraph) Equal(other *Hypergraph) bool {
	if len(h.vertices) != len(other.vertices) || len(h.edges) != len(other.edges) {
		return false
	}
	for v, es := range h.vertices {
		oes, ok := other.vertices[v]
		if !ok || !sameIntSet(es, oes) {
			return false
		}
	}
	for e, vs := range h.edges {
		ovs, ok := other.edges[e]
		if !ok || !sameIntSet(vs, ovs) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of h, including the vertices-within table and
// id counters. Algorithms that mutate in place always start from a Clone
// of their input. Complexity: O(p).
func (h *Hypergraph) Clone() *Hypergraph {
	out := &Hypergraph{
		vertices:     make(map[int][]int, len(h.vertices)),
		edges:        make(map[int][]int, len(h.edges)),
		weights:      make(map[int]float64, len(h.weights)),
		within:       make(map[int][]int, len(h.within)),
		trackWithin:  h.trackWithin,
		nextVertexID: h.nextVertexID,
		nextEdgeID:   h.nextEdgeID,
	}
	for v, es := range h.vertices {
		out.vertices[v] = append([]int(nil), es...)
	}
	for e, vs := range h.edges {
		out.edges[e] = append([]int(nil), vs...)
	}
	for e, w := range h.weights {
		out.weights[e] = w
	}
	for v, vs := range h.within {
		out.within[v] = append([]int(nil), vs...)
	}
	return out
}

func containsInt(xs []int, target int) bool {
	for _, x := range xs {
		if x == target {
			return true
		}
	}
	return false
}

func sameIntSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, x := range a {
		counts[x]++
	}
	for _, x := range b {
		counts[x]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}
	return true
}
