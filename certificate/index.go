package certificate

import (
	"sort"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/order"
)

// Index precomputes everything a k-trimmed certificate needs from a fixed
// hypergraph: a maximum-adjacency vertex ordering, each edge's "head" (the
// vertex of the edge that appears earliest in that ordering), and, for
// every vertex, its backward edges in head order (the edges it belongs to
// but is not the head of, in increasing order of their heads' position).
//
// An Index holds an immutable snapshot of the hypergraph it was built
// from; building Certificate(k) for many values of k never mutates it and
// never re-derives the ordering.
type Index struct {
	h             *hypergraph.Hypergraph
	headOf        map[int]int
	backwardEdges map[int][]int
}

// NewIndex builds a certificate index over h. h is not retained; a clone
// is taken so later mutation of the caller's hypergraph cannot affect
// certificates built from this index.
//
// Complexity: O(p), where p is the size of h.
func NewIndex(h *hypergraph.Hypergraph) (*Index, error) {
	vertices := h.Vertices()
	if len(vertices) == 0 {
		return nil, hypergraph.ErrNoVertices
	}

	snapshot := h.Clone()
	start := vertices[0]
	vertexOrder, err := order.MaximumAdjacencyOrdering(snapshot, start)
	if err != nil {
		return nil, err
	}
	orderOf := make(map[int]int, len(vertexOrder))
	for i, v := range vertexOrder {
		orderOf[v] = i
	}

	edgeIDs := snapshot.EdgeIDs()
	headOf := make(map[int]int, len(edgeIDs))
	headIndexOf := make(map[int]int, len(edgeIDs))
	for _, e := range edgeIDs {
		vs, err := snapshot.Edge(e)
		if err != nil {
			return nil, err
		}
		bestIndex := -1
		var bestVertex int
		for _, v := range vs {
			if i := orderOf[v]; bestIndex == -1 || i < bestIndex {
				bestIndex = i
				bestVertex = v
			}
		}
		headOf[e] = bestVertex
		headIndexOf[e] = bestIndex
	}

	// Induced head ordering: edges sorted by their head's position in the
	// vertex ordering, ties broken by edge id for a deterministic result.
	edgeOrdering := append([]int(nil), edgeIDs...)
	sort.Slice(edgeOrdering, func(i, j int) bool {
		a, b := edgeOrdering[i], edgeOrdering[j]
		if headIndexOf[a] != headIndexOf[b] {
			return headIndexOf[a] < headIndexOf[b]
		}
		return a < b
	})

	// One pass over the (head-ordered) edges, not one pass per vertex: each
	// edge is appended directly to its non-head endpoints' lists, so every
	// vertex's backwardEdges comes out already in head order for free.
	backwardEdges := make(map[int][]int, len(vertices))
	for _, v := range vertices {
		backwardEdges[v] = nil
	}
	for _, e := range edgeOrdering {
		vs, err := snapshot.Edge(e)
		if err != nil {
			return nil, err
		}
		head := headOf[e]
		for _, v := range vs {
			if v == head {
				continue
			}
			backwardEdges[v] = append(backwardEdges[v], e)
		}
	}

	return &Index{h: snapshot, headOf: headOf, backwardEdges: backwardEdges}, nil
}

// Certificate returns the k-trimmed certificate: a subhypergraph over the
// same vertices that retains, for each vertex, only its first k backward
// edges (plus those edges' heads). Every cut of value at most k in the
// original hypergraph has the same value in the certificate.
//
// Returns ErrInvalidK if k is negative.
//
// Complexity: O(kn), where n is the number of vertices.
func (idx *Index) Certificate(k int) (*hypergraph.Hypergraph, error) {
	if k < 0 {
		return nil, ErrInvalidK
	}

	vertices := idx.h.Vertices()
	edgeVertices := make(map[int][]int)

	for _, v := range vertices {
		backward := idx.backwardEdges[v]
		limit := k
		if limit > len(backward) {
			limit = len(backward)
		}
		for _, e := range backward[:limit] {
			if _, ok := edgeVertices[e]; !ok {
				edgeVertices[e] = []int{idx.headOf[e]}
			}
			edgeVertices[e] = append(edgeVertices[e], v)
		}
	}

	edgeIDs := make([]int, 0, len(edgeVertices))
	for e := range edgeVertices {
		edgeIDs = append(edgeIDs, e)
	}
	sort.Ints(edgeIDs)

	edges := make([][]int, len(edgeIDs))
	weights := make([]float64, len(edgeIDs))
	for i, e := range edgeIDs {
		edges[i] = edgeVertices[e]
		w, err := idx.h.EdgeWeight(e)
		if err != nil {
			return nil, err
		}
		weights[i] = w
	}

	return hypergraph.NewWeighted(vertices, edges, weights)
}
