package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/hypergraph"
)

type MutationSuite struct {
	suite.Suite
}

func TestMutationSuite(t *testing.T) {
	suite.Run(t, new(MutationSuite))
}

func (s *MutationSuite) TestAddHyperedgeRejectsUnknownVertex() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2}, nil)
	require.NoError(err)
	_, err = h.AddHyperedge([]int{1, 99}, 1)
	require.ErrorIs(err, hypergraph.ErrUnknownVertex)
}

func (s *MutationSuite) TestAddHyperedgeRejectsBadWeight() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2}, nil)
	require.NoError(err)
	_, err = h.AddHyperedge([]int{1, 2}, 0)
	require.ErrorIs(err, hypergraph.ErrBadWeight)
}

func (s *MutationSuite) TestAddHyperedgeUpdatesIncidence() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3}, nil)
	require.NoError(err)
	id, err := h.AddHyperedge([]int{1, 2, 3}, 4.5)
	require.NoError(err)

	w, err := h.EdgeWeight(id)
	require.NoError(err)
	require.Equal(4.5, w)

	for _, v := range []int{1, 2, 3} {
		es, err := h.EdgesIncidentOn(v)
		require.NoError(err)
		require.Contains(es, id)
	}
}

func (s *MutationSuite) TestRemoveHyperedgeUnknown() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2}, [][]int{{1, 2}})
	require.NoError(err)
	require.ErrorIs(h.RemoveHyperedge(99), hypergraph.ErrUnknownEdge)
}

func (s *MutationSuite) TestRemoveHyperedgeStripsIncidence() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {2, 3}})
	require.NoError(err)
	require.NoError(h.RemoveHyperedge(0))
	require.Equal(1, h.NumEdges())

	es, err := h.EdgesIncidentOn(1)
	require.NoError(err)
	require.Empty(es)

	_, err = h.EdgeWeight(0)
	require.ErrorIs(err, hypergraph.ErrUnknownEdge)
}

func (s *MutationSuite) TestRemoveVertexUnknown() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2}, nil)
	require.NoError(err)
	require.ErrorIs(h.RemoveVertex(99), hypergraph.ErrUnknownVertex)
}

func (s *MutationSuite) TestRemoveVertexDropsDegenerateEdges() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {2, 3, 1}})
	require.NoError(err)
	// Edge 0 = {1,2} becomes a singleton {2} once 1 is removed, so it
	// must be dropped entirely.
	require.NoError(h.RemoveVertex(1))
	require.Equal(2, h.NumVertices())
	_, err = h.Edge(0)
	require.ErrorIs(err, hypergraph.ErrUnknownEdge)

	remaining, err := h.Edge(1)
	require.NoError(err)
	require.ElementsMatch([]int{2, 3}, remaining)
}

func (s *MutationSuite) TestRemoveSingletonAndEmptyHyperedges() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {1}, {}})
	require.NoError(err)
	require.Equal(3, h.NumEdges())
	h.RemoveSingletonAndEmptyHyperedges()
	require.Equal(1, h.NumEdges())
}

func (s *MutationSuite) TestEqualIgnoresWithinBookkeeping() {
	require := require.New(s.T())
	a, err := hypergraph.New([]int{1, 2}, [][]int{{1, 2}})
	require.NoError(err)
	b, err := hypergraph.New([]int{1, 2}, [][]int{{1, 2}})
	require.NoError(err)
	require.True(a.Equal(b))
}
