package pq_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperkcut/pq"
)

type WeightHeapSuite struct {
	suite.Suite
}

func TestWeightHeapSuite(t *testing.T) {
	suite.Run(t, new(WeightHeapSuite))
}

func (s *WeightHeapSuite) TestNewRejectsDuplicates() {
	require := require.New(s.T())
	_, err := pq.NewWeightHeap([]int{1, 1})
	require.ErrorIs(err, pq.ErrDuplicateValue)
}

func (s *WeightHeapSuite) TestIncrementRejectsNonPositive() {
	require := require.New(s.T())
	w, err := pq.NewWeightHeap([]int{1})
	require.NoError(err)
	require.ErrorIs(w.Increment(1, 0), pq.ErrBadAmount)
	require.ErrorIs(w.Increment(1, -2), pq.ErrBadAmount)
}

func (s *WeightHeapSuite) TestIncrementUnknownValue() {
	require := require.New(s.T())
	w, err := pq.NewWeightHeap([]int{1})
	require.NoError(err)
	require.ErrorIs(w.Increment(99, 1), pq.ErrUnknownValue)
}

func (s *WeightHeapSuite) TestPopEmpty() {
	require := require.New(s.T())
	w, err := pq.NewWeightHeap(nil)
	require.NoError(err)
	_, err = w.Pop()
	require.ErrorIs(err, pq.ErrEmpty)
}

func (s *WeightHeapSuite) TestIncrementAndPopOrdersByKey() {
	require := require.New(s.T())
	w, err := pq.NewWeightHeap([]int{1, 2, 3})
	require.NoError(err)

	require.NoError(w.Increment(2, 5.5))
	require.NoError(w.Increment(3, 2.0))
	require.NoError(w.Increment(1, 1.0))

	key, value, err := w.PopKeyVal()
	require.NoError(err)
	require.Equal(5.5, key)
	require.Equal(2, value)

	key, value, err = w.PopKeyVal()
	require.NoError(err)
	require.Equal(2.0, key)
	require.Equal(3, value)

	key, value, err = w.PopKeyVal()
	require.NoError(err)
	require.Equal(1.0, key)
	require.Equal(1, value)
}

func (s *WeightHeapSuite) TestRepeatedIncrementsAccumulate() {
	require := require.New(s.T())
	w, err := pq.NewWeightHeap([]int{1, 2})
	require.NoError(err)
	require.NoError(w.Increment(1, 1.5))
	require.NoError(w.Increment(1, 1.5))

	key, err := w.Key(1)
	require.NoError(err)
	require.Equal(3.0, key)
}
