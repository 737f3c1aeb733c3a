package typescale

import (
	"errors"
	"fmt"
)

// DomainError reports a parameter that would make the arithmetic undefined,
// such as a zero divisor.
type DomainError struct {
	Param  string  // "steps"
	Value  float64 // 0
	Reason string  // "must not be zero"
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %s (got %v)", e.Param, e.Reason, e.Value)
}

var (
	// ErrInvalidRoundDirection is returned by ParseRoundDirection.
	ErrInvalidRoundDirection = errors.New("invalid rounding direction")
	// ErrInvalidFormat is returned by ParseOutputFormat.
	ErrInvalidFormat = errors.New("invalid output format")
	// ErrInvalidScaleIndex is returned by ScaleIndexByName.
	ErrInvalidScaleIndex = errors.New("invalid scale index function")
)
