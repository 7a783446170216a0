package hio

import "errors"

// Sentinel errors for the text formats in this package. Callers branch on
// these with errors.Is; message text is not part of the contract.
var (
	// ErrEmptyInput indicates a reader was given nothing to scan.
	ErrEmptyInput = errors.New("hio: empty input")

	// ErrMalformedHeader indicates the first line did not parse as
	// "m n" or "m n 1".
	ErrMalformedHeader = errors.New("hio: malformed header line")

	// ErrTruncatedBody indicates fewer data lines were present than the
	// header's edge (or partition) count promised.
	ErrTruncatedBody = errors.New("hio: fewer lines than the header declared")

	// ErrMalformedLine indicates a body line did not parse as the
	// expected sequence of numbers.
	ErrMalformedLine = errors.New("hio: malformed data line")

	// ErrNonPositiveWeight indicates a weighted hyperedge line's weight
	// token was not strictly positive.
	ErrNonPositiveWeight = errors.New("hio: edge weight must be positive")
)
