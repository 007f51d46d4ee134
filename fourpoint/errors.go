// Package fourpoint: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// call-site context via %w) and never panic on user input; callers match
// with errors.Is.
package fourpoint

import "errors"

var (
	// ErrNilDistances indicates a nil Distances value was passed in.
	ErrNilDistances = errors.New("fourpoint: nil distance matrix")

	// ErrIndexOutOfRange indicates a quartet index outside 0..n-1.
	ErrIndexOutOfRange = errors.New("fourpoint: quartet index out of range")

	// ErrDuplicateIndex indicates a quartet with fewer than four distinct
	// indices; a degenerate quartet has no three-pairing decomposition.
	ErrDuplicateIndex = errors.New("fourpoint: quartet indices must be distinct")

	// ErrNegativeTolerance indicates tolerance < 0. The squared-difference
	// comparison (a-b)² < tolerance can never hold for a negative bound, so
	// a negative tolerance is rejected rather than silently failing every
	// quartet.
	ErrNegativeTolerance = errors.New("fourpoint: tolerance must be non-negative")
)
