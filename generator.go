package typescale

import (
	"fmt"

	"go.uber.org/zap"
)

// Generator assembles type scales and logs what it computes.
type Generator struct {
	log *zap.Logger
}

// NewGenerator creates a Generator. A nil logger disables logging.
func NewGenerator(log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{log: log.Named("generator")}
}

// Generate is the main entry point. It builds a type scale with a
// non-logging Generator.
//
// Start from DefaultConfig and change what differs. Only nil Hierarchy,
// ScaleIndex and Round are filled in; numeric fields are taken as given,
// so Generate(Config{Hierarchy: h}) fails on its zero Steps.
func Generate(config Config) (*TypeScale, error) {
	return NewGenerator(nil).Generate(config)
}

// Generate computes the font size and line height of every style in
// config.Hierarchy.
func (g *Generator) Generate(config Config) (*TypeScale, error) {
	config = config.withDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	g.log.Debug("Generating type scale",
		zap.Strings("hierarchy", config.Hierarchy),
		zap.Int("base_index", config.BaseIndex),
		zap.Float64("base", config.Base),
		zap.Float64("multiplier", config.Multiplier),
		zap.Int("steps", config.Steps),
		zap.String("unit", string(config.Unit)))

	// Line height at the base index; relative line heights are ratios of it.
	_, baseLineHeight, err := g.sizesAt(0, config)
	if err != nil {
		return nil, err
	}
	if config.Unit.IsRelative() && baseLineHeight == 0 {
		return nil, &DomainError{Param: "base line height", Value: 0, Reason: fmt.Sprintf("must not be zero with relative unit %s", config.Unit)}
	}

	scale := &TypeScale{
		Styles:         make([]Style, 0, len(config.Hierarchy)),
		Unit:           config.Unit,
		Base:           config.Base,
		BaseLineHeight: baseLineHeight,
	}

	for i, name := range config.Hierarchy {
		offset := float64(i - config.BaseIndex)
		scaleIndex := config.ScaleIndex(offset)

		fontSize, err := FontSize(scaleIndex, config.fontSizeOptions())
		if err != nil {
			return nil, fmt.Errorf("font size for %q: %w", name, err)
		}
		lineHeight, err := LineHeight(fontSize, config.lineHeightOptions())
		if err != nil {
			return nil, fmt.Errorf("line height for %q: %w", name, err)
		}

		style := Style{
			Name:       name,
			ScaleIndex: scaleIndex,
			FontSize:   serialize(fontSize, config.Base, config.Unit),
			LineHeight: serialize(lineHeight, baseLineHeight, config.Unit),
		}
		scale.set(style)

		g.log.Debug("Computed style",
			zap.String("style", name),
			zap.Float64("offset", offset),
			zap.Float64("scale_index", scaleIndex),
			zap.Stringer("font_size", style.FontSize),
			zap.Stringer("line_height", style.LineHeight))
	}

	if len(scale.Styles) != len(config.Hierarchy) {
		g.log.Warn("Duplicate style names collapsed",
			zap.Int("hierarchy", len(config.Hierarchy)),
			zap.Int("styles", len(scale.Styles)))
	}

	return scale, nil
}

// sizesAt computes the raw font size and line height at a hierarchy offset.
func (g *Generator) sizesAt(offset float64, config Config) (float64, float64, error) {
	fontSize, err := FontSize(config.ScaleIndex(offset), config.fontSizeOptions())
	if err != nil {
		return 0, 0, err
	}
	lineHeight, err := LineHeight(fontSize, config.lineHeightOptions())
	if err != nil {
		return 0, 0, err
	}
	return fontSize, lineHeight, nil
}

// serialize attaches the unit. Absolute units keep the raw number; relative
// units express the value as a ratio of reference.
func serialize(raw, reference float64, unit Unit) Value {
	switch {
	case unit == UnitNone:
		return Value{Raw: raw}
	case unit.IsRelative():
		return Value{Raw: raw, Text: formatRatio(raw/reference) + string(unit)}
	default:
		return Value{Raw: raw, Text: formatNumber(raw) + string(unit)}
	}
}
