package mincut

import "errors"

var (
	// ErrPartitionCount indicates a Cut's partition count does not match
	// the k it is being validated against.
	ErrPartitionCount = errors.New("mincut: number of partitions does not match k")

	// ErrVertexCount indicates the total number of vertices across a
	// Cut's partitions does not match the hypergraph's vertex count.
	ErrVertexCount = errors.New("mincut: total vertices across partitions does not match hypergraph")

	// ErrVertexMismatch indicates the set of vertices named across a
	// Cut's partitions is not exactly the hypergraph's vertex set.
	ErrVertexMismatch = errors.New("mincut: vertices in partitions do not match vertices in hypergraph")

	// ErrEmptyPartition indicates one of a Cut's partitions has no
	// vertices.
	ErrEmptyPartition = errors.New("mincut: one of the partitions is empty")

	// ErrValueMismatch indicates a Cut's recorded value does not match
	// the actual weight of edges crossing its partitions.
	ErrValueMismatch = errors.New("mincut: recorded cut value does not match the value computed from partitions")
)
