package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors raised at interval construction
	ErrInvalidCoverage      = errors.New("coverage outside [0, 1]")
	ErrInvalidResampleCount = errors.New("resample count must be greater than 1")
	ErrInvertedBounds       = errors.New("interval lower bound exceeds upper bound")
	ErrDegenerateSample     = errors.New("sample too small for estimation")

	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrReportNotFound = fmt.Errorf("%w: report", ErrNotFound)
)

// Error constructors with context
func NewCoverageError(coverage float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidCoverage, coverage)
}

func NewResampleCountError(resamples int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidResampleCount, resamples)
}

func NewInvertedBoundsError(lower, upper float64) error {
	return fmt.Errorf("%w: lower=%v upper=%v", ErrInvertedBounds, lower, upper)
}

func NewDegenerateSampleError(reason string, n int) error {
	return fmt.Errorf("%w: %s (n=%d)", ErrDegenerateSample, reason, n)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidCoverage) ||
		errors.Is(err, ErrInvalidResampleCount) ||
		errors.Is(err, ErrInvertedBounds) ||
		errors.Is(err, ErrDegenerateSample)
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
