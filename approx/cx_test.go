package approx_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/approx"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

type CXSuite struct {
	suite.Suite
}

func TestCXSuite(t *testing.T) {
	suite.Run(t, new(CXSuite))
}

func (s *CXSuite) h1() *hypergraph.Hypergraph {
	h, err := hypergraph.New(
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[][]int{
			{1, 2, 9}, {1, 3, 9}, {1, 2, 5, 7, 8}, {3, 5, 8}, {2, 5, 6},
			{6, 7, 9}, {2, 3, 10}, {5, 10}, {1, 4}, {4, 8, 10},
			{1, 2, 3}, {1, 2, 3, 4, 5, 6, 7}, {1, 5},
		},
	)
	s.Require().NoError(err)
	return h
}

func (s *CXSuite) TestRejectsNonPositiveEpsilon() {
	require := require.New(s.T())
	h := s.h1()
	_, err := approx.CX(h, 0)
	require.ErrorIs(err, approx.ErrBadEpsilon)
}

func (s *CXSuite) TestBoundOnH1() {
	require := require.New(s.T())
	h := s.h1()
	cut, err := approx.CX(h, 2.0)
	require.NoError(err)
	// True min 2-cut of h1 is 3; CX(2.0) approximates within (2+epsilon) = 4x.
	require.LessOrEqual(cut.Value, 12.0)
	require.GreaterOrEqual(cut.Value, 3.0)
}

func (s *CXSuite) TestDoesNotMutateInput() {
	require := require.New(s.T())
	h := s.h1()
	before := h.Clone()
	_, err := approx.CX(h, 1.0)
	require.NoError(err)
	require.True(h.Equal(before))
}

func (s *CXSuite) TestReturnsExactZeroForDisconnectedHypergraph() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1, 2, 3, 4}, [][]int{{1, 2}, {3, 4}})
	require.NoError(err)
	cut, err := approx.CX(h, 0.5)
	require.NoError(err)
	require.Equal(0.0, cut.Value)
}

func (s *CXSuite) TestSingleVertexReturnsMax() {
	require := require.New(s.T())
	h, err := hypergraph.New([]int{1}, nil)
	require.NoError(err)
	cut, err := approx.CX(h, 1.0)
	require.NoError(err)
	require.Equal(mincut.Max().Value, cut.Value)
}
