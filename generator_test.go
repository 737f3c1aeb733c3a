package typescale

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerateDefaults(t *testing.T) {
	scale, err := Generate(DefaultConfig())
	require.NoError(t, err)

	expected := []struct {
		name       string
		fontSize   float64
		lineHeight float64
	}{
		{"footnote", 11.25, 16},
		{"caption", 14, 24},
		{"p", 16, 24},
		{"h6", 18.5, 32},
		{"h5", 23.25, 32},
		{"h4", 30.75, 40},
		{"h3", 42.25, 56},
		{"h2", 60, 80},
		{"h1", 88, 120},
	}

	require.Equal(t, len(expected), scale.Len())
	for i, want := range expected {
		style := scale.Styles[i]
		assert.Equal(t, want.name, style.Name)
		assert.True(t, style.FontSize.IsNumeric())
		assert.InDelta(t, want.fontSize, style.FontSize.Raw, 1e-9, "font size of %s", want.name)
		assert.InDelta(t, want.lineHeight, style.LineHeight.Raw, 1e-9, "line height of %s", want.name)
	}

	p, ok := scale.Get("p")
	require.True(t, ok)
	assert.Equal(t, 0.0, p.ScaleIndex)
	assert.Equal(t, "16", p.FontSize.String())
	assert.Equal(t, "24", p.LineHeight.String())
	assert.InDelta(t, 24, scale.BaseLineHeight, 1e-9)
}

func TestGenerateKeysMatchHierarchy(t *testing.T) {
	hierarchies := [][]string{
		{"a"},
		{"small", "body", "large"},
		{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	}

	for _, hierarchy := range hierarchies {
		config := DefaultConfig()
		config.Hierarchy = hierarchy

		scale, err := Generate(config)
		require.NoError(t, err)
		assert.Equal(t, hierarchy, scale.Names())
	}
}

func TestGenerateEmptyHierarchyUsesDefault(t *testing.T) {
	config := DefaultConfig()
	config.Hierarchy = nil

	scale, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, DefaultHierarchy, scale.Names())
}

func TestGenerateExplicitEmptyHierarchy(t *testing.T) {
	config := DefaultConfig()
	config.Hierarchy = []string{}

	scale, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 0, scale.Len())
	assert.Empty(t, scale.Names())
}

func TestGenerateZeroConfig(t *testing.T) {
	_, err := Generate(Config{Hierarchy: []string{"p"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps")
	assert.Contains(t, err.Error(), "grid height")
	assert.Contains(t, err.Error(), "multiplier")
}

func TestGenerateValuesStayFinite(t *testing.T) {
	for _, multiplier := range []float64{0.5, 1, 1.25, 2, 3} {
		config := DefaultConfig()
		config.Multiplier = multiplier

		scale, err := Generate(config)
		require.NoError(t, err)
		for _, s := range scale.Styles {
			assert.False(t, math.IsNaN(s.FontSize.Raw) || math.IsInf(s.FontSize.Raw, 0), s.Name)
			assert.GreaterOrEqual(t, s.LineHeight.Raw, 0.0, s.Name)
			assert.InDelta(t, 0, math.Mod(s.LineHeight.Raw, config.GridHeight), 1e-9, s.Name)
		}
	}
}

func TestGenerateMatchesSingleValueFunctions(t *testing.T) {
	hierarchy := []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}
	config := DefaultConfig()
	config.Hierarchy = hierarchy
	config.BaseIndex = 0

	scale, err := Generate(config)
	require.NoError(t, err)

	for i, name := range hierarchy {
		fontSize, err := FontSize(ScaleIndex(float64(i)), FontSizeOptions{Base: 16, Multiplier: 2, Steps: 5})
		require.NoError(t, err)
		lineHeight, err := LineHeight(fontSize, LineHeightOptions{Multiplier: 1.3, GridHeight: 8})
		require.NoError(t, err)

		style, ok := scale.Get(name)
		require.True(t, ok)
		assert.Equal(t, fontSize, style.FontSize.Raw, name)
		assert.Equal(t, lineHeight, style.LineHeight.Raw, name)
	}
}

func TestGenerateBaseIndexKeepsBase(t *testing.T) {
	for baseIndex := 0; baseIndex < len(DefaultHierarchy); baseIndex++ {
		for _, base := range []float64{12, 16, 18.3} {
			config := DefaultConfig()
			config.BaseIndex = baseIndex
			config.Base = base

			scale, err := Generate(config)
			require.NoError(t, err)

			style := scale.Styles[baseIndex]
			assert.Equal(t, 0.0, style.ScaleIndex)
			assert.Equal(t, defaultRound(base), style.FontSize.Raw)
		}
	}
}

func TestGenerateBaseIndexOutsideHierarchy(t *testing.T) {
	config := DefaultConfig()
	config.Hierarchy = []string{"h3", "h2", "h1"}
	config.BaseIndex = -4

	scale, err := Generate(config)
	require.NoError(t, err)
	require.Equal(t, 3, scale.Len())

	// Offsets 4, 5 and 6 from the default scale.
	assert.InDelta(t, 42.25, scale.Styles[0].FontSize.Raw, 1e-9)
	assert.InDelta(t, 60, scale.Styles[1].FontSize.Raw, 1e-9)
	assert.InDelta(t, 88, scale.Styles[2].FontSize.Raw, 1e-9)
	assert.InDelta(t, 24, scale.BaseLineHeight, 1e-9)

	config.BaseIndex = 10
	scale, err = Generate(config)
	require.NoError(t, err)
	for _, s := range scale.Styles {
		assert.Less(t, s.ScaleIndex, 0.0)
		assert.Less(t, s.FontSize.Raw, 16.0)
	}
}

func TestGenerateCustomScaleIndex(t *testing.T) {
	config := DefaultConfig()
	config.ScaleIndex = LinearScaleIndex

	scale, err := Generate(config)
	require.NoError(t, err)

	h1, _ := scale.Get("h1")
	assert.Equal(t, 6.0, h1.ScaleIndex)
	// 16 * 2^(6/5) = 36.76
	assert.InDelta(t, 37, h1.FontSize.Raw, 1e-9)
}

func TestGenerateDuplicateNamesOverwrite(t *testing.T) {
	config := DefaultConfig()
	config.Hierarchy = []string{"a", "b", "a"}
	config.BaseIndex = 0

	scale, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, scale.Names())
	a, _ := scale.Get("a")
	// The later occurrence (offset 2) wins, in the first position.
	assert.InDelta(t, ScaleIndex(2), a.ScaleIndex, 1e-12)
	assert.Equal(t, "a", scale.Styles[0].Name)
}

func TestGenerateAbsoluteUnit(t *testing.T) {
	pattern := regexp.MustCompile(`^\d+(\.\d+)?px$`)

	config := DefaultConfig()
	config.Unit = UnitPX

	scale, err := Generate(config)
	require.NoError(t, err)

	for _, s := range scale.Styles {
		assert.Regexp(t, pattern, s.FontSize.Text)
		assert.Regexp(t, pattern, s.LineHeight.Text)
		assert.Equal(t, formatNumber(s.FontSize.Raw)+"px", s.FontSize.String())
	}

	footnote, _ := scale.Get("footnote")
	assert.Equal(t, "11.25px", footnote.FontSize.String())
	assert.Equal(t, "16px", footnote.LineHeight.String())
}

func TestGenerateRelativeUnit(t *testing.T) {
	config := DefaultConfig()
	config.Unit = UnitREM

	scale, err := Generate(config)
	require.NoError(t, err)

	expected := map[string][2]string{
		"footnote": {"0.7031rem", "0.6667rem"},
		"caption":  {"0.875rem", "1rem"},
		"p":        {"1rem", "1rem"},
		"h6":       {"1.1563rem", "1.3333rem"},
		"h4":       {"1.9219rem", "1.6667rem"},
		"h1":       {"5.5rem", "5rem"},
	}
	for name, want := range expected {
		s, ok := scale.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, want[0], s.FontSize.String(), "font size of %s", name)
		assert.Equal(t, want[1], s.LineHeight.String(), "line height of %s", name)
	}

	// The ratio times the base reconstructs the unitless size.
	for _, s := range scale.Styles {
		ratio, err := strconv.ParseFloat(strings.TrimSuffix(s.FontSize.Text, "rem"), 64)
		require.NoError(t, err)
		assert.InDelta(t, s.FontSize.Raw, ratio*config.Base, 1e-4*config.Base)
	}
}

func TestGenerateEmUnit(t *testing.T) {
	config := DefaultConfig()
	config.Unit = UnitEM
	config.Base = 20

	scale, err := Generate(config)
	require.NoError(t, err)

	p, _ := scale.Get("p")
	assert.Equal(t, "1em", p.FontSize.String())
	assert.Equal(t, "1em", p.LineHeight.String())
}

func TestGenerateIdempotent(t *testing.T) {
	config := DefaultConfig()
	config.Unit = UnitREM

	first, err := Generate(config)
	require.NoError(t, err)
	second, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		params []string
	}{
		{name: "zero steps", modify: func(c *Config) { c.Steps = 0 }, params: []string{"steps"}},
		{name: "zero grid", modify: func(c *Config) { c.GridHeight = 0 }, params: []string{"grid height"}},
		{name: "negative grid", modify: func(c *Config) { c.GridHeight = -8 }, params: []string{"grid height"}},
		{name: "infinite base", modify: func(c *Config) { c.Base = math.Inf(1) }, params: []string{"base"}},
		{name: "negative base", modify: func(c *Config) { c.Base = -16 }, params: []string{"base"}},
		{name: "negative steps", modify: func(c *Config) { c.Steps = -5 }, params: []string{"steps"}},
		{name: "zero multiplier", modify: func(c *Config) { c.Multiplier = 0 }, params: []string{"multiplier"}},
		{name: "negative multiplier", modify: func(c *Config) { c.Multiplier = -2 }, params: []string{"multiplier"}},
		{name: "NaN multiplier", modify: func(c *Config) { c.Multiplier = math.NaN() }, params: []string{"multiplier"}},
		{name: "zero line height multiplier", modify: func(c *Config) { c.LineHeightMultiplier = 0 }, params: []string{"line height multiplier"}},
		{name: "negative line height multiplier", modify: func(c *Config) { c.LineHeightMultiplier = -1.3 }, params: []string{"line height multiplier"}},
		{
			name: "zero base with relative unit",
			modify: func(c *Config) {
				c.Base = 0
				c.Unit = UnitREM
			},
			params: []string{"base"},
		},
		{
			name: "several problems at once",
			modify: func(c *Config) {
				c.Steps = 0
				c.GridHeight = 0
			},
			params: []string{"steps", "grid height"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)

			_, err := Generate(config)
			require.Error(t, err)
			for _, param := range tt.params {
				assert.Contains(t, err.Error(), param)
			}

			var domainErr *DomainError
			assert.ErrorAs(t, err, &domainErr)
		})
	}
}

func TestGenerateRejectsUnknownUnit(t *testing.T) {
	config := DefaultConfig()
	config.Unit = Unit("vw")

	_, err := Generate(config)

	var unitErr *UnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, "vw", unitErr.Unit)
}

func TestGenerateZeroBaseUnitless(t *testing.T) {
	config := DefaultConfig()
	config.Base = 0

	scale, err := Generate(config)
	require.NoError(t, err)
	for _, s := range scale.Styles {
		assert.Equal(t, 0.0, s.FontSize.Raw)
		assert.Equal(t, 0.0, s.LineHeight.Raw)
	}
}

func TestGeneratorLogsStyles(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	gen := NewGenerator(zap.New(core))

	_, err := gen.Generate(DefaultConfig())
	require.NoError(t, err)

	computed := logs.FilterMessage("Computed style")
	assert.Equal(t, len(DefaultHierarchy), computed.Len())
	assert.Equal(t, "generator", computed.All()[0].LoggerName)

	var buf bytes.Buffer
	for _, entry := range computed.All() {
		buf.WriteString(entry.ContextMap()["style"].(string))
		buf.WriteString(" ")
	}
	assert.Equal(t, strings.Join(DefaultHierarchy, " ")+" ", buf.String())
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{input: "", want: UnitNone},
		{input: "none", want: UnitNone},
		{input: "px", want: UnitPX},
		{input: " rem ", want: UnitREM},
		{input: "Q", want: UnitQ},
		{input: "q", wantErr: true},
		{input: "vh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				var unitErr *UnitError
				require.ErrorAs(t, err, &unitErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnitKinds(t *testing.T) {
	for _, u := range []Unit{UnitCM, UnitMM, UnitQ, UnitIN, UnitPC, UnitPT, UnitPX} {
		assert.True(t, u.IsAbsolute(), u)
		assert.False(t, u.IsRelative(), u)
	}
	for _, u := range []Unit{UnitEM, UnitREM} {
		assert.True(t, u.IsRelative(), u)
		assert.False(t, u.IsAbsolute(), u)
	}
	assert.True(t, UnitNone.Valid())
	assert.False(t, Unit("%").Valid())
	assert.Len(t, Units(), 9)
}
