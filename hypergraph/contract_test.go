package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/hypergraph"
)

type ContractionSuite struct {
	suite.Suite
}

func TestContractionSuite(t *testing.T) {
	suite.Run(t, new(ContractionSuite))
}

// triangleHypergraph is the three-vertex, three-2-edge triangle: {1,2},
// {2,3}, {1,3}. Contracting any one edge leaves a 2-vertex hypergraph whose
// two surviving edges both join the merged vertex to the third vertex.
func triangleHypergraph(s *ContractionSuite) *hypergraph.Hypergraph {
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {2, 3}, {1, 3}})
	s.Require().NoError(err)
	return h
}

func (s *ContractionSuite) TestContractUnknownEdge() {
	require := require.New(s.T())
	h := triangleHypergraph(s)
	_, err := h.Contract(99)
	require.ErrorIs(err, hypergraph.ErrUnknownEdge)
}

func (s *ContractionSuite) TestContractDoesNotMutateOriginal() {
	require := require.New(s.T())
	h := triangleHypergraph(s)
	before := h.Clone()

	_, err := h.Contract(0)
	require.NoError(err)
	require.True(h.Equal(before), "Contract must not mutate its receiver")
}

func (s *ContractionSuite) TestContractEdgeMergesEndpoints() {
	require := require.New(s.T())
	h := triangleHypergraph(s)

	out, err := h.Contract(0) // contract edge {1, 2}
	require.NoError(err)
	require.Equal(2, out.NumVertices(), "merging 2 of 3 vertices leaves 2")

	vertices := out.Vertices()
	require.Len(vertices, 2)

	var newVertex, survivor int
	if vertices[0] == 3 {
		survivor, newVertex = vertices[0], vertices[1]
	} else {
		survivor, newVertex = vertices[1], vertices[0]
	}
	require.Equal(3, survivor)

	within, err := out.VerticesWithin(newVertex)
	require.NoError(err)
	require.ElementsMatch([]int{1, 2}, within)

	// Edges {2,3} and {1,3} both become {3, newVertex}; they do not
	// collapse into one edge since edge identity is preserved, but the
	// degenerate edge {1,2} itself must be gone.
	require.Equal(2, out.NumEdges())
}

func (s *ContractionSuite) TestContractInPlaceMutatesReceiver() {
	require := require.New(s.T())
	h := triangleHypergraph(s)
	err := h.ContractInPlace(0)
	require.NoError(err)
	require.Equal(2, h.NumVertices())
}

func (s *ContractionSuite) TestContractRemovesSubsetEdges() {
	require := require.New(s.T())
	// Edge 1 = {1, 2, 3}, edge 0 = {1, 2}. Contracting edge 0 leaves
	// vertex 3 and the new vertex; edge 1's incidence collapses to just
	// {3, newVertex} (not empty, since 3 survives), so it is kept, not
	// removed. To exercise true subsumption, contract the larger edge.
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {1, 2, 3}})
	require.NoError(err)

	out, err := h.Contract(1) // contract {1, 2, 3}
	require.NoError(err)
	require.Equal(1, out.NumVertices())
	require.Equal(0, out.NumEdges(), "edge {1,2} is a subset of the contracted edge and must vanish")
}

func (s *ContractionSuite) TestContractSetMergesArbitraryVertices() {
	require := require.New(s.T())
	h := triangleHypergraph(s)
	out, err := h.ContractSet([]int{1, 3})
	require.NoError(err)
	require.Equal(2, out.NumVertices())
}

func (s *ContractionSuite) TestContractOnEdgeWithDuplicateEndpointsDedupes() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 1, 2}})
	require.NoError(err)
	out, err := h.Contract(0)
	require.NoError(err)
	// Only 1 and 2 are endpoints once deduped; 3 survives untouched.
	require.Equal(2, out.NumVertices())
}

func (s *ContractionSuite) TestNextVertexIDNeverReused() {
	require := require.New(s.T())
	h := triangleHypergraph(s)
	first := h.NextVertexID()
	err := h.ContractInPlace(0)
	require.NoError(err)
	require.Equal(first, h.NextVertexID()-1)
	require.NotContains(h.Vertices(), 1)
}
