package hypergraph

import "sort"

// Hypergraph is the primary data structure of this module: a finite vertex
// set, a multiset of hyperedges over those vertices, per-edge weights, and
// a side table recording which original vertices have been collapsed into
// each live vertex by contraction.
//
// Two hypergraphs are equal (see Equal) iff their vertex-incidence and
// edge-incidence maps agree pointwise; the vertices-within bookkeeping and
// the id counters are not part of that comparison.
type Hypergraph struct {
	// vertices maps a live vertex id to the ordered list of hyperedge ids
	// incident on it.
	vertices map[int][]int

	// edges maps a hyperedge id to the ordered list of vertex ids it
	// contains. Outside of contraction calls this list has no duplicates.
	edges map[int][]int

	// weights maps a hyperedge id to its positive weight. An "unweighted"
	// hypergraph is one where every entry is 1; there is no separate type.
	weights map[int]float64

	// within maps a live vertex id to the original vertex ids that have
	// been collapsed into it. Entries for vertices that no longer exist
	// may be retained for performance; callers only ever look up live ids.
	within map[int][]int

	// trackWithin reports whether the within bookkeeping is maintained; it
	// is turned off when the caller only needs cut values, not partitions.
	// Pure performance optimization; it never changes a reported cut value.
	trackWithin bool

	nextVertexID int
	nextEdgeID   int
}

// New constructs an unweighted hypergraph (every edge weight is 1) from a
// vertex list and an edge list. Returns ErrNoVertices if vertices is empty.
//
// Complexity: O(p), where p is the combined size of all edges.
func New(vertices []int, edges [][]int) (*Hypergraph, error) {
	weights := make([]float64, len(edges))
	for i := range weights {
		weights[i] = 1
	}
	return NewWeighted(vertices, edges, weights)
}

// NewWeighted constructs a hypergraph from a vertex list, an edge list, and
// a parallel list of positive edge weights. Returns ErrNoVertices if
// vertices is empty, ErrWeightCountMismatch if len(weights) != len(edges),
// and ErrBadWeight if any weight is not strictly positive.
//
// Complexity: O(p), where p is the combined size of all edges.
func NewWeighted(vertices []int, edges [][]int, weights []float64) (*Hypergraph, error) {
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}
	if len(weights) != len(edges) {
		return nil, ErrWeightCountMismatch
	}
	for _, w := range weights {
		if w <= 0 {
			return nil, ErrBadWeight
		}
	}

	maxVertex := vertices[0]
	for _, v := range vertices {
		if v > maxVertex {
			maxVertex = v
		}
	}

	h := &Hypergraph{
		vertices:     make(map[int][]int, len(vertices)),
		edges:        make(map[int][]int, len(edges)),
		weights:      make(map[int]float64, len(edges)),
		within:       make(map[int][]int, len(vertices)),
		trackWithin:  true,
		nextVertexID: maxVertex + 1,
		nextEdgeID:   len(edges),
	}
	for _, v := range vertices {
		h.vertices[v] = nil
		h.within[v] = []int{v}
	}
	for id, vs := range edges {
		cp := append([]int(nil), vs...)
		h.edges[id] = cp
		h.weights[id] = weights[id]
		for _, v := range cp {
			h.vertices[v] = append(h.vertices[v], id)
		}
	}

	return h, nil
}

// DisableWithinTracking stops h from maintaining the vertices-within side
// table on future contractions. Use for value-only algorithms that never
// need to recover a partition; it is a pure performance optimization and
// never changes a reported cut value.
func (h *Hypergraph) DisableWithinTracking() {
	h.trackWithin = false
}

// TracksWithin reports whether h maintains the vertices-within side table.
func (h *Hypergraph) TracksWithin() bool {
	return h.trackWithin
}

// dedupSorted returns the sorted, duplicate-free version of vs. Used both
// when collapsing duplicate endpoints of a contracted edge and to fix a
// deterministic concatenation order for vertices-within bookkeeping.
func dedupSorted(vs []int) []int {
	cp := append([]int(nil), vs...)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != cp[i-1] {
			out = append(out, v)
		}
	}
	return out
}
