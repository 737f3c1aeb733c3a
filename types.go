package typescale

import (
	"encoding/json"
	"math"
	"strconv"
)

// Value is a generated size. Raw always holds the unitless number; Text holds
// the unit-suffixed form and is empty when no unit was requested.
type Value struct {
	Raw  float64 // 24
	Text string  // "1.5rem", or "" for unitless scales
}

// IsNumeric reports whether v carries no unit text.
func (v Value) IsNumeric() bool { return v.Text == "" }

// String returns Text, or the shortest decimal form of Raw.
func (v Value) String() string {
	if v.Text != "" {
		return v.Text
	}
	return formatNumber(v.Raw)
}

// MarshalJSON encodes unitless values as numbers and the rest as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNumeric() {
		return json.Marshal(v.Raw)
	}
	return json.Marshal(v.Text)
}

// MarshalYAML follows the same number-or-string convention as MarshalJSON.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.IsNumeric() {
		return v.Raw, nil
	}
	return v.Text, nil
}

// Style is the generated entry for one hierarchy item.
type Style struct {
	Name       string  // "h1"
	ScaleIndex float64 // 12.286...
	FontSize   Value
	LineHeight Value
}

// TypeScale maps style names to sizes, in hierarchy order.
type TypeScale struct {
	Styles         []Style
	Unit           Unit    // unit the values were serialized with
	Base           float64 // base font size
	BaseLineHeight float64 // line height at the base index

	index map[string]int
}

// Len returns the number of styles.
func (ts *TypeScale) Len() int { return len(ts.Styles) }

// Names returns the style names in hierarchy order.
func (ts *TypeScale) Names() []string {
	names := make([]string, len(ts.Styles))
	for i, s := range ts.Styles {
		names[i] = s.Name
	}
	return names
}

// Get looks up a style by name.
func (ts *TypeScale) Get(name string) (Style, bool) {
	if ts.index == nil {
		for _, s := range ts.Styles {
			if s.Name == name {
				return s, true
			}
		}
		return Style{}, false
	}
	i, ok := ts.index[name]
	if !ok {
		return Style{}, false
	}
	return ts.Styles[i], true
}

// set inserts or replaces a style. A repeated name keeps the position of
// its first occurrence.
func (ts *TypeScale) set(s Style) {
	if ts.index == nil {
		ts.index = make(map[string]int)
	}
	if i, ok := ts.index[s.Name]; ok {
		ts.Styles[i] = s
		return
	}
	ts.index[s.Name] = len(ts.Styles)
	ts.Styles = append(ts.Styles, s)
}

// formatNumber renders a float without exponent or trailing zeros.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ratioPrecision is the number of decimals kept for relative units.
const ratioPrecision = 4

// formatRatio renders v with at most four decimal places.
func formatRatio(v float64) string {
	p := math.Pow(10, ratioPrecision)
	return formatNumber(math.Round(v*p) / p)
}
