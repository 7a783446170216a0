package order

import "errors"

var (
	// ErrEmptyHypergraph indicates an ordering was requested on a
	// hypergraph with no vertices.
	ErrEmptyHypergraph = errors.New("order: hypergraph has no vertices")

	// ErrUnknownStartVertex indicates the requested start vertex is not
	// live in the hypergraph.
	ErrUnknownStartVertex = errors.New("order: start vertex is not in the hypergraph")
)
