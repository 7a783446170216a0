package selector

import "errors"

// Sentinel errors for algorithm selection. Callers branch on these with
// errors.Is; message text is not part of the contract.
var (
	// ErrUnknownAlgorithm indicates a name outside the fixed nine-name set.
	ErrUnknownAlgorithm = errors.New("selector: unknown algorithm name")

	// ErrMissingParam indicates a parameter the algorithm requires was not
	// supplied.
	ErrMissingParam = errors.New("selector: missing required parameter")

	// ErrForbiddenParam indicates a parameter was supplied that the
	// algorithm does not accept.
	ErrForbiddenParam = errors.New("selector: parameter not accepted by this algorithm")

	// ErrBadK indicates k was supplied but out of the range the algorithm
	// accepts (k < 2, or k != 2 for algorithms fixed at k=2).
	ErrBadK = errors.New("selector: k out of range for this algorithm")

	// ErrBadEpsilon indicates epsilon was supplied but not strictly
	// positive.
	ErrBadEpsilon = errors.New("selector: epsilon must be positive")
)
