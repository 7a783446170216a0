package certificate

import "errors"

// ErrInvalidK indicates Certificate was called with a negative k.
var ErrInvalidK = errors.New("certificate: k must be non-negative")
