package approx

import "errors"

// ErrBadEpsilon indicates CX was called with a non-positive epsilon.
var ErrBadEpsilon = errors.New("approx: epsilon must be positive")
