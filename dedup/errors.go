package dedup

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLimit is returned when the per-value limit k is below 1.
	ErrInvalidLimit = errors.New("dedup: limit must be at least 1")

	// ErrPrecondition matches every *PreconditionError through errors.Is.
	ErrPrecondition = errors.New("dedup: precondition violated")
)

// PreconditionError reports the first element of s that breaks the ordering
// the compactor depends on.
type PreconditionError struct {
	Index  int
	Value  any
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("dedup: input not adjacency-sorted: %s at index %d (value %v)", e.Reason, e.Index, e.Value)
}

// Is lets errors.Is(err, ErrPrecondition) succeed without exposing the type.
func (e *PreconditionError) Is(target error) bool { return target == ErrPrecondition }

const (
	reasonReopened = "run reopened"
	reasonReversed = "order reversed"
)

func checkLimit(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, k)
	}
	return nil
}
