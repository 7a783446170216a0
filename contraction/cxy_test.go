package contraction_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/contraction"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

type CXYSuite struct {
	suite.Suite
}

func TestCXYSuite(t *testing.T) {
	suite.Run(t, new(CXYSuite))
}

func (s *CXYSuite) h1() *hypergraph.Hypergraph {
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

func (s *CXYSuite) TestRejectsBadK() {
	require := require.New(s.T())
	h := s.h1()
	_, _, err := contraction.CXYMinCut(h, 1)
	require.ErrorIs(err, contraction.ErrBadK)
	_, _, err = contraction.CXYMinCut(h, 11)
	require.ErrorIs(err, contraction.ErrBadK)
}

func (s *CXYSuite) TestFindsAValidUpperBoundOnH1() {
	require := require.New(s.T())
	h := s.h1()
	cut, stats, err := contraction.CXYMinCut(h, 2, contraction.WithSeed(7), contraction.WithMaxRuns(50))
	require.NoError(err)
	require.GreaterOrEqual(cut.Value, 3.0)
	require.NoError(mincut.CutIsValid(cut, h, 2))
	require.Greater(stats.NumRuns, 0)
}

func (s *CXYSuite) TestDoesNotMutateInput() {
	require := require.New(s.T())
	h := s.h1()
	before := h.Clone()
	_, _, err := contraction.CXYMinCut(h, 2, contraction.WithSeed(1), contraction.WithMaxRuns(5))
	require.NoError(err)
	require.True(h.Equal(before))
}

func (s *CXYSuite) TestDiscoveryValueStopsEarly() {
	require := require.New(s.T())
	h := s.h1()
	cut, stats, err := contraction.CXYMinCut(h, 2,
		contraction.WithSeed(3),
		contraction.WithMaxRuns(10000),
		contraction.WithDiscoveryValue(3.0),
	)
	require.NoError(err)
	require.Less(stats.NumRuns, 10000)
	require.GreaterOrEqual(cut.Value, 3.0)
}

func (s *CXYSuite) TestSameSeedIsDeterministic() {
	require := require.New(s.T())
	h := s.h1()
	cut1, _, err := contraction.CXYMinCut(h, 2, contraction.WithSeed(99), contraction.WithMaxRuns(20))
	require.NoError(err)
	cut2, _, err := contraction.CXYMinCut(h, 2, contraction.WithSeed(99), contraction.WithMaxRuns(20))
	require.NoError(err)
	require.Equal(cut1.Value, cut2.Value)
}
