package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for edge-list validation.
var (
	// ErrInvalidEdge is the umbrella class for any edge rejected at
	// representation construction time.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop")

	// ErrVertexOutOfRange indicates an endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrConflictingWeight indicates the same vertex pair given twice with different weights.
	ErrConflictingWeight = errors.New("core: conflicting duplicate weight")

	// ErrInvalidWeight indicates a NaN or infinite weight.
	ErrInvalidWeight = errors.New("core: weight is NaN or Inf")

	// ErrNegativeVertexCount indicates n < 0.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")
)

// EdgeError describes a rejected input edge.
//
// Index is the position of the offending edge in the caller's list; Reason is
// one of the specific sentinels above. errors.Is(err, ErrInvalidEdge) and
// errors.Is(err, Reason) both hold.
type EdgeError struct {
	Index  int
	Edge   Edge
	Reason error
}

// Error implements error.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("%v: edge #%d %v: %v", ErrInvalidEdge, e.Index, e.Edge, e.Reason)
}

// Unwrap exposes both the umbrella class and the specific reason.
func (e *EdgeError) Unwrap() []error {
	return []error{ErrInvalidEdge, e.Reason}
}
