package certificate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/certificate"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

type MinimumCutSuite struct {
	suite.Suite
}

func TestMinimumCutSuite(t *testing.T) {
	suite.Run(t, new(MinimumCutSuite))
}

func (s *MinimumCutSuite) h1() *hypergraph.Hypergraph {
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

func (s *MinimumCutSuite) h2() *hypergraph.Hypergraph {
	h, err := hypergraph.New(
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
	)
	s.Require().NoError(err)
	return h
}

func (s *MinimumCutSuite) TestMinimumCutMatchesKWOnH1() {
	require := require.New(s.T())
	h := s.h1()
	cut, err := certificate.MinimumCut(h, mincut.KWMinCut)
	require.NoError(err)
	require.Equal(3.0, cut.Value)
}

func (s *MinimumCutSuite) TestMinimumCutMatchesKWOnH2() {
	require := require.New(s.T())
	h := s.h2()
	cut, err := certificate.MinimumCut(h, mincut.KWMinCut)
	require.NoError(err)
	require.Equal(0.0, cut.Value)
}

func (s *MinimumCutSuite) TestMinimumCutDoesNotMutateInput() {
	require := require.New(s.T())
	h := s.h1()
	before := h.Clone()
	_, err := certificate.MinimumCut(h, mincut.KWMinCut)
	require.NoError(err)
	require.True(h.Equal(before))
}

func (s *MinimumCutSuite) TestApproxThenCertifyMatchesMinimumCutOnH1() {
	require := require.New(s.T())
	h := s.h1()
	cut, err := certificate.ApproxThenCertify(h, 2.0, mincut.KWMinCut)
	require.NoError(err)
	require.Equal(3.0, cut.Value)
}

func (s *MinimumCutSuite) TestApproxThenCertifyMatchesMinimumCutOnH2() {
	require := require.New(s.T())
	h := s.h2()
	cut, err := certificate.ApproxThenCertify(h, 1.0, mincut.KWMinCut)
	require.NoError(err)
	require.Equal(0.0, cut.Value)
}

func (s *MinimumCutSuite) TestApproxThenCertifyPropagatesBadEpsilon() {
	require := require.New(s.T())
	h := s.h2()
	_, err := certificate.ApproxThenCertify(h, 0, mincut.KWMinCut)
	require.Error(err)
}
