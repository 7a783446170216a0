package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/hypergraph"
	"github.com/katalvlaran/hyperkcut/mincut"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

func (s *ValidateSuite) buildTriangle() *hypergraph.Hypergraph {
	h, err := hypergraph.New([]int{1, 2, 3}, [][]int{{1, 2}, {2, 3}, {1, 3}})
	s.Require().NoError(err)
	return h
}

func (s *ValidateSuite) TestValidCut() {
	require := require.New(s.T())
	h := s.buildTriangle()
	cut := mincut.Cut{Partitions: [][]int{{1}, {2, 3}}, Value: 2}
	require.NoError(mincut.CutIsValid(cut, h, 2))
}

func (s *ValidateSuite) TestWrongPartitionCount() {
	require := require.New(s.T())
	h := s.buildTriangle()
	cut := mincut.Cut{Partitions: [][]int{{1, 2, 3}}, Value: 0}
	require.ErrorIs(mincut.CutIsValid(cut, h, 2), mincut.ErrPartitionCount)
}

func (s *ValidateSuite) TestEmptyPartition() {
	require := require.New(s.T())
	h := s.buildTriangle()
	cut := mincut.Cut{Partitions: [][]int{{}, {1, 2, 3}}, Value: 0}
	require.ErrorIs(mincut.CutIsValid(cut, h, 2), mincut.ErrEmptyPartition)
}

func (s *ValidateSuite) TestVertexMismatch() {
	require := require.New(s.T())
	h := s.buildTriangle()
	cut := mincut.Cut{Partitions: [][]int{{1}, {2, 99}}, Value: 2}
	require.ErrorIs(mincut.CutIsValid(cut, h, 2), mincut.ErrVertexMismatch)
}

func (s *ValidateSuite) TestValueMismatch() {
	require := require.New(s.T())
	h := s.buildTriangle()
	cut := mincut.Cut{Partitions: [][]int{{1}, {2, 3}}, Value: 99}
	require.ErrorIs(mincut.CutIsValid(cut, h, 2), mincut.ErrValueMismatch)
}

func (s *ValidateSuite) TestDuplicateVertexAcrossPartitionsIsVertexCountMismatch() {
	require := require.New(s.T())
	h := s.buildTriangle()
	// 4 total slots but only 3 distinct hypergraph vertices: 1 is
	// repeated, so the vertex-count check (4 != 3) fires before the
	// set-equality check would even run.
	cut := mincut.Cut{Partitions: [][]int{{1}, {1, 2, 3}}, Value: 0}
	require.ErrorIs(mincut.CutIsValid(cut, h, 2), mincut.ErrVertexCount)
}
