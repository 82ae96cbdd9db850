package coloring

import (
	"errors"
	"fmt"
)

// Sentinel results. Callers branch with errors.Is.
//
// ErrInfeasible is an expected outcome, not a defect: it means no valid
// coloring exists for the given palette size, which the caller handles
// by skipping coloring or retrying with a larger K. It is never wrapped
// by, and never wraps, ErrInvalidInput.
var (
	ErrInvalidInput = errors.New("coloring: invalid input")
	ErrInfeasible   = errors.New("coloring: no valid coloring for palette size")
)

// ErrUnknownRegion classifies lookups and edges that name a region
// outside the declared set. It is itself an invalid-input condition.
var ErrUnknownRegion = fmt.Errorf("%w: unknown region", ErrInvalidInput)

// DuplicateRegionError reports a region identifier declared more than
// once. Duplicates are rejected outright rather than silently merged,
// since the caller's records would otherwise be colored ambiguously.
type DuplicateRegionError struct {
	Region string
}

func (e *DuplicateRegionError) Error() string {
	return fmt.Sprintf("coloring: duplicate region %q", e.Region)
}

func (e *DuplicateRegionError) Unwrap() error { return ErrInvalidInput }

// UnknownRegionError reports a region identifier that was not part of
// the declared region set.
type UnknownRegionError struct {
	Region string
}

func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("coloring: unknown region %q", e.Region)
}

func (e *UnknownRegionError) Unwrap() error { return ErrUnknownRegion }

// PaletteSizeError reports a palette size below the minimum of 1.
type PaletteSizeError struct {
	K int
}

func (e *PaletteSizeError) Error() string {
	return fmt.Sprintf("coloring: palette size %d, need at least 1", e.K)
}

func (e *PaletteSizeError) Unwrap() error { return ErrInvalidInput }
