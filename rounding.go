package typescale

import (
	"fmt"
	"math"
	"strings"
)

// RoundFunc rounds a size to some target multiple.
type RoundFunc func(float64) float64

// RoundDirection selects how Rounder snaps to a multiple.
type RoundDirection string

// Rounding directions
const (
	RoundUp      RoundDirection = "up"
	RoundDown    RoundDirection = "down"
	RoundNearest RoundDirection = "nearest"
)

// ParseRoundDirection converts user input into a RoundDirection.
// An empty string selects RoundNearest.
func ParseRoundDirection(s string) (RoundDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return RoundUp, nil
	case "down":
		return RoundDown, nil
	case "", "nearest":
		return RoundNearest, nil
	default:
		return "", fmt.Errorf("%w %q (expected up, down or nearest)", ErrInvalidRoundDirection, s)
	}
}

// Rounder returns a function that rounds to the nearest multiple of
// targetMultiple in the given direction. The zero direction rounds to the
// nearest multiple, with ties going up.
func Rounder(targetMultiple float64, direction RoundDirection) (RoundFunc, error) {
	if targetMultiple == 0 || math.IsNaN(targetMultiple) || math.IsInf(targetMultiple, 0) {
		return nil, &DomainError{Param: "round multiple", Value: targetMultiple, Reason: "must be a non-zero finite number"}
	}

	m := targetMultiple
	switch direction {
	case RoundUp:
		return func(n float64) float64 { return math.Ceil(n/m) * m }, nil
	case RoundDown:
		return func(n float64) float64 { return math.Floor(n/m) * m }, nil
	case RoundNearest, "":
		// math.Round breaks ties away from zero; half-up needs Floor(x+0.5)
		return func(n float64) float64 { return math.Floor(n/m+0.5) * m }, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidRoundDirection, direction)
	}
}

// mustRounder is for package defaults whose arguments are known to be valid.
func mustRounder(targetMultiple float64, direction RoundDirection) RoundFunc {
	fn, err := Rounder(targetMultiple, direction)
	if err != nil {
		panic(err)
	}
	return fn
}
