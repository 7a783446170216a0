package pq

import "errors"

var (
	// ErrUnknownValue indicates an increment referenced a value that is
	// not currently held by the structure (never inserted, or already
	// popped).
	ErrUnknownValue = errors.New("pq: unknown value")

	// ErrEmpty indicates Pop or PopKeyVal was called on a structure with
	// no remaining values.
	ErrEmpty = errors.New("pq: structure is empty")

	// ErrDuplicateValue indicates a constructor received the same value
	// twice; values must be unique.
	ErrDuplicateValue = errors.New("pq: duplicate value")

	// ErrKeyOverflow indicates an increment would push a value's key past
	// the capacity a BucketHeap was constructed with.
	ErrKeyOverflow = errors.New("pq: increment exceeds bucket capacity")

	// ErrBadAmount indicates a WeightHeap increment was called with a
	// non-positive amount.
	ErrBadAmount = errors.New("pq: increment amount must be positive")
)
