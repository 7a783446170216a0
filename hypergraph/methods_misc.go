package hypergraph

import "sort"

// Normalize returns a copy of h with vertex ids remapped to a contiguous
// 0..n-1 range, in increasing order of the original ids. Edge weights are
// preserved; edge ids are renumbered to 0..m-1 in increasing order of the
// original edge ids. The vertices-within
// bookkeeping is reset to singletons, since the remapped ids no longer
// correspond to the ids that bookkeeping was keyed on.
//
// Complexity: O(p log n).
func Normalize(h *Hypergraph) *Hypergraph {
	vertices := h.Vertices()
	sort.Ints(vertices)

	remap := make(map[int]int, len(vertices))
	for newID, oldID := range vertices {
		remap[oldID] = newID
	}

	newVertices := make([]int, len(vertices))
	for i := range vertices {
		newVertices[i] = i
	}

	edgeIDs := h.EdgeIDs()
	sort.Ints(edgeIDs)
	newEdges := make([][]int, len(edgeIDs))
	newWeights := make([]float64, len(edgeIDs))
	for i, e := range edgeIDs {
		vs := h.edges[e]
		remapped := make([]int, len(vs))
		for j, v := range vs {
			remapped[j] = remap[v]
		}
		newEdges[i] = remapped
		newWeights[i] = h.weights[e]
	}

	if len(newVertices) == 0 {
		// h has no vertices left (KCoreDecomposition can remove them all);
		// NewWeighted rejects an empty vertex list, so build it directly.
		out := &Hypergraph{
			vertices:    make(map[int][]int),
			edges:       make(map[int][]int, len(newEdges)),
			weights:     make(map[int]float64, len(newEdges)),
			within:      make(map[int][]int),
			trackWithin: h.trackWithin,
			nextEdgeID:  len(newEdges),
		}
		for i, vs := range newEdges {
			out.edges[i] = vs
			out.weights[i] = newWeights[i]
		}
		return out
	}

	out, err := NewWeighted(newVertices, newEdges, newWeights)
	if err != nil {
		// newVertices is non-empty here and weights were already validated
		// when h was built, so this cannot happen.
		panic("hypergraph: Normalize produced an invalid hypergraph: " + err.Error())
	}
	out.trackWithin = h.trackWithin
	return out
}

// KCoreDecomposition returns the k-core of h: the result of repeatedly
// removing vertices of degree less than k until none remain, with vertex
// ids then normalized to a contiguous range. h is not modified.
//
// Complexity: the scan over the remaining vertices restarts after every
// removal, so up to n+1 scans in the worst case, plus the cost of
// Normalize.
func KCoreDecomposition(h *Hypergraph, k int) *Hypergraph {
	copy := h.Clone()

	for {
		removed := false
		for _, v := range copy.Vertices() {
			if len(copy.vertices[v]) < k {
				_ = copy.RemoveVertex(v)
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}

	return Normalize(copy)
}
