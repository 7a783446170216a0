package contraction

import "errors"

// ErrBadK indicates a call was made with k < 2 or k greater than the
// number of live vertices in the hypergraph.
var ErrBadK = errors.New("contraction: k must be at least 2 and at most the number of vertices")
