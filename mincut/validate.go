package mincut

import "github.com/katalvlaran/hyperkcut/hypergraph"

// valueTolerance absorbs floating-point drift when comparing a cut's
// recorded value against the value recomputed from its partitions.
const valueTolerance = 1e-6

// CutIsValid checks that cut is a genuine k-way partition of h's vertices
// whose recorded value matches the actual weight of edges crossing it.
// Returns nil if valid, or the first violated invariant as one of this
// package's sentinel errors.
func CutIsValid(cut Cut, h *hypergraph.Hypergraph, k int) error {
	if len(cut.Partitions) != k {
		return ErrPartitionCount
	}

	totalVertices := 0
	seen := make(map[int]struct{})
	for _, partition := range cut.Partitions {
		if len(partition) == 0 {
			return ErrEmptyPartition
		}
		totalVertices += len(partition)
		for _, v := range partition {
			seen[v] = struct{}{}
		}
	}
	if totalVertices != h.NumVertices() {
		return ErrVertexCount
	}

	hypergraphVertices := make(map[int]struct{}, h.NumVertices())
	for _, v := range h.Vertices() {
		hypergraphVertices[v] = struct{}{}
	}
	if len(seen) != len(hypergraphVertices) {
		return ErrVertexMismatch
	}
	for v := range seen {
		if _, ok := hypergraphVertices[v]; !ok {
			return ErrVertexMismatch
		}
	}

	partitionOf := make(map[int]int, len(seen))
	for i, partition := range cut.Partitions {
		for _, v := range partition {
			partitionOf[v] = i
		}
	}

	var expected float64
	for _, e := range h.EdgeIDs() {
		vs, err := h.Edge(e)
		if err != nil {
			return err
		}
		if len(vs) == 0 {
			continue
		}
		first := partitionOf[vs[0]]
		crosses := false
		for _, v := range vs[1:] {
			if partitionOf[v] != first {
				crosses = true
				break
			}
		}
		if crosses {
			w, err := h.EdgeWeight(e)
			if err != nil {
				return err
			}
			expected += w
		}
	}

	diff := expected - cut.Value
	if diff < 0 {
		diff = -diff
	}
	if diff > valueTolerance {
		return ErrValueMismatch
	}
	return nil
}
