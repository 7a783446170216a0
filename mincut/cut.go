package mincut

import "math"

// Cut is a k-way partition of a hypergraph's vertices together with its
// value: the total weight of edges that are not entirely contained in any
// single partition.
type Cut struct {
	Partitions [][]int
	Value      float64
}

// Max returns a placeholder cut with value +Inf, used as the initial
// "best so far" accumulator before any real cut has been found.
func Max() Cut {
	return Cut{Value: math.Inf(1)}
}

// Less reports whether c has a strictly smaller value than other. Ties
// are broken arbitrarily by callers; Cut itself does not impose an order
// on equal-value cuts.
func (c Cut) Less(other Cut) bool {
	return c.Value < other.Value
}
