package typescale

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// DefaultHierarchy is the style order used when none is given, smallest first.
var DefaultHierarchy = []string{"footnote", "caption", "p", "h6", "h5", "h4", "h3", "h2", "h1"}

var defaultRound = mustRounder(0.25, RoundUp)

// Config holds type scale parameters.
type Config struct {
	Hierarchy            []string       // style names, smallest first (empty: DefaultHierarchy)
	BaseIndex            int            // hierarchy position that keeps the base size; may lie outside the hierarchy
	ScaleIndex           ScaleIndexFunc // offset -> scale index (nil: ScaleIndex)
	Base                 float64        // base font size
	Multiplier           float64        // growth factor per Steps
	Steps                int            // scale steps between multiples
	Round                RoundFunc      // font size rounding (nil: 0.25 up)
	GridHeight           float64        // baseline grid for line heights
	LineHeightMultiplier float64        // line height relative to font size
	Unit                 Unit           // "" for plain numbers
}

// DefaultConfig returns the documented defaults. Callers adjust the fields
// they care about and pass the result to Generate. A zero Config is not
// usable on its own: its Steps, GridHeight and Multiplier fail Validate.
func DefaultConfig() Config {
	return Config{
		Hierarchy:            append([]string(nil), DefaultHierarchy...),
		BaseIndex:            2,
		ScaleIndex:           ScaleIndex,
		Base:                 16,
		Multiplier:           2,
		Steps:                5,
		Round:                defaultRound,
		GridHeight:           8,
		LineHeightMultiplier: 1.3,
		Unit:                 UnitNone,
	}
}

// withDefaults fills the nil fields. An empty but non-nil hierarchy stays
// empty and yields an empty scale.
// Numeric fields are left alone so an explicit zero still fails Validate.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Hierarchy == nil {
		c.Hierarchy = d.Hierarchy
	}
	if c.ScaleIndex == nil {
		c.ScaleIndex = d.ScaleIndex
	}
	if c.Round == nil {
		c.Round = d.Round
	}
	return c
}

// Validate reports every parameter that would make generation undefined.
// The returned error combines all problems found.
func (c Config) Validate() error {
	var err error
	if c.Steps == 0 {
		err = multierr.Append(err, &DomainError{Param: "steps", Value: 0, Reason: "must not be zero"})
	} else if c.Steps < 0 {
		err = multierr.Append(err, &DomainError{Param: "steps", Value: float64(c.Steps), Reason: "must be positive"})
	}
	if c.GridHeight <= 0 || !finite(c.GridHeight) {
		err = multierr.Append(err, &DomainError{Param: "grid height", Value: c.GridHeight, Reason: "must be a positive finite number"})
	}
	if !finite(c.Base) {
		err = multierr.Append(err, &DomainError{Param: "base", Value: c.Base, Reason: "must be finite"})
	} else if c.Base < 0 {
		err = multierr.Append(err, &DomainError{Param: "base", Value: c.Base, Reason: "must not be negative"})
	} else if c.Base == 0 && c.Unit.IsRelative() {
		err = multierr.Append(err, &DomainError{Param: "base", Value: 0, Reason: fmt.Sprintf("must not be zero with relative unit %s", c.Unit)})
	}
	if c.Multiplier <= 0 || !finite(c.Multiplier) {
		err = multierr.Append(err, &DomainError{Param: "multiplier", Value: c.Multiplier, Reason: "must be a positive finite number"})
	}
	if c.LineHeightMultiplier <= 0 || !finite(c.LineHeightMultiplier) {
		err = multierr.Append(err, &DomainError{Param: "line height multiplier", Value: c.LineHeightMultiplier, Reason: "must be a positive finite number"})
	}
	if !c.Unit.Valid() {
		err = multierr.Append(err, &UnitError{Unit: string(c.Unit)})
	}
	return err
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (c Config) fontSizeOptions() FontSizeOptions {
	return FontSizeOptions{
		Base:       c.Base,
		Multiplier: c.Multiplier,
		Steps:      c.Steps,
		Round:      c.Round,
	}
}

func (c Config) lineHeightOptions() LineHeightOptions {
	return LineHeightOptions{
		Multiplier: c.LineHeightMultiplier,
		GridHeight: c.GridHeight,
	}
}
