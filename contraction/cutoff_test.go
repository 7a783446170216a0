package contraction_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/contraction"
	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

type CutoffSuite struct {
	suite.Suite
}

func TestCutoffSuite(t *testing.T) {
	suite.Run(t, new(CutoffSuite))
}

func (s *CutoffSuite) h2() *hypergraph.Hypergraph {
	h, err := hypergraph.New(
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		[][]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}, {9, 10}},
	)
	s.Require().NoError(err)
	return h
}

func (s *CutoffSuite) TestRunCutoffReturnsSamplesAndRespectsCap() {
	require := require.New(s.T())
	h := s.h2()

	trial := func(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *contraction.Stats) (mincut.Cut, error) {
		time.Sleep(time.Millisecond)
		stats.NumContractions++
		return mincut.Cut{Value: 1}, nil
	}
	cap5 := func(h *hypergraph.Hypergraph, k int) int { return 5 }

	intervals := []time.Duration{2 * time.Millisecond, 2 * time.Millisecond}
	cut, stats, samples, err := contraction.RunCutoff(h, 2, trial, cap5, intervals)
	require.NoError(err)
	require.Equal(1.0, cut.Value)
	require.Equal(5, stats.NumRuns)
	require.NotNil(samples)
}

func (s *CutoffSuite) TestRunCutoffPropagatesTrialError() {
	require := require.New(s.T())
	h := s.h2()

	boom := func(h *hypergraph.Hypergraph, k int, rng *rand.Rand, stats *contraction.Stats) (mincut.Cut, error) {
		return mincut.Cut{}, contraction.ErrBadK
	}
	cap3 := func(h *hypergraph.Hypergraph, k int) int { return 3 }

	_, _, _, err := contraction.RunCutoff(h, 2, boom, cap3, nil)
	require.ErrorIs(err, contraction.ErrBadK)
}
