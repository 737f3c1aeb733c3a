package typescale

import (
	"fmt"
	"math"
	"strings"
)

// ScaleIndexFunc maps a hierarchy offset (position minus base index) to a
// scale index. Implementations should return 0 for offset 0 so the base
// style keeps the base font size.
type ScaleIndexFunc func(offset float64) float64

// scaleIndexExponent controls how quickly styles far from the base grow.
const scaleIndexExponent = 1.4

// ScaleIndex is the default mapper: sign(d) * |d|^1.4.
// It is antisymmetric and grows faster than linear away from the base.
func ScaleIndex(offset float64) float64 {
	if offset == 0 {
		return 0
	}
	return math.Copysign(math.Pow(math.Abs(offset), scaleIndexExponent), offset)
}

// LinearScaleIndex maps every hierarchy step to one scale step.
func LinearScaleIndex(offset float64) float64 {
	return offset
}

// FibonacciScaleIndex maps the offset, truncated toward zero, to the signed
// Fibonacci number at that position: ..., -2, -1, -1, 0, 1, 1, 2, 3, 5, ...
func FibonacciScaleIndex(offset float64) float64 {
	n := int(math.Abs(offset))
	current, next := 0.0, 1.0
	for i := 0; i < n; i++ {
		current, next = next, current+next
	}
	if offset < 0 {
		return -current
	}
	return current
}

// scaleIndexFuncs is keyed by the names accepted in configuration.
var scaleIndexFuncs = map[string]ScaleIndexFunc{
	"power":     ScaleIndex,
	"linear":    LinearScaleIndex,
	"fibonacci": FibonacciScaleIndex,
}

// ScaleIndexByName resolves power, linear or fibonacci. An empty name
// selects the default power curve.
func ScaleIndexByName(name string) (ScaleIndexFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ScaleIndex, nil
	}
	fn, ok := scaleIndexFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected power, linear or fibonacci)", ErrInvalidScaleIndex, name)
	}
	return fn, nil
}

// FontSizeOptions configures FontSize.
type FontSizeOptions struct {
	Base       float64   // font size at scale index 0
	Multiplier float64   // growth factor per Steps
	Steps      int       // scale steps between multiples
	Round      RoundFunc // nil rounds up to the nearest 0.25
}

// FontSize returns Round(Base * Multiplier^(scaleIndex/Steps)).
// Every Steps increments of scale index multiply the size by Multiplier.
func FontSize(scaleIndex float64, opts FontSizeOptions) (float64, error) {
	if opts.Steps == 0 {
		return 0, &DomainError{Param: "steps", Value: 0, Reason: "must not be zero"}
	}
	round := opts.Round
	if round == nil {
		round = defaultRound
	}
	return round(opts.Base * math.Pow(opts.Multiplier, scaleIndex/float64(opts.Steps))), nil
}

// LineHeightOptions configures LineHeight.
type LineHeightOptions struct {
	Multiplier float64 // line height relative to font size
	GridHeight float64 // baseline grid increment
}

// LineHeight returns fontSize*Multiplier rounded up to the next multiple of
// GridHeight. It never rounds down, whatever direction font sizes use.
func LineHeight(fontSize float64, opts LineHeightOptions) (float64, error) {
	if opts.GridHeight <= 0 || math.IsNaN(opts.GridHeight) || math.IsInf(opts.GridHeight, 0) {
		return 0, &DomainError{Param: "grid height", Value: opts.GridHeight, Reason: "must be a positive finite number"}
	}
	round, err := Rounder(opts.GridHeight, RoundUp)
	if err != nil {
		return 0, err
	}
	return round(fontSize * opts.Multiplier), nil
}
