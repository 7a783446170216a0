package hypergraph

import "errors"

// Sentinel errors for hypergraph construction and mutation. Callers branch
// on these with errors.Is; message text is not part of the contract.
var (
	// ErrNoVertices indicates a construction call supplied an empty vertex list.
	ErrNoVertices = errors.New("hypergraph: at least one vertex is required")

	// ErrUnknownVertex indicates an operation referenced a vertex id that is
	// not currently live in the hypergraph.
	ErrUnknownVertex = errors.New("hypergraph: unknown vertex id")

	// ErrUnknownEdge indicates an operation referenced an edge id that does
	// not currently exist in the hypergraph.
	ErrUnknownEdge = errors.New("hypergraph: unknown edge id")

	// ErrBadWeight indicates a non-positive edge weight was supplied.
	ErrBadWeight = errors.New("hypergraph: edge weight must be positive")

	// ErrWeightCountMismatch indicates NewWeighted received a different
	// number of weights than edges.
	ErrWeightCountMismatch = errors.New("hypergraph: number of weights does not match number of edges")
)
