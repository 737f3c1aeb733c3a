package typescale

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// documentVersion is bumped when the JSON/YAML schema changes.
const documentVersion = "1.0"

// Document represents the structured export schema
type Document struct {
	Version        string          `json:"version" yaml:"version"`
	Unit           string          `json:"unit,omitempty" yaml:"unit,omitempty"`
	Base           float64         `json:"base" yaml:"base"`
	BaseLineHeight float64         `json:"base_line_height" yaml:"base_line_height"`
	Styles         []DocumentStyle `json:"styles" yaml:"styles"`
}

// DocumentStyle represents a single style in the export
type DocumentStyle struct {
	Name       string  `json:"name" yaml:"name"`
	ScaleIndex float64 `json:"scale_index" yaml:"scale_index"`
	FontSize   Value   `json:"font_size" yaml:"font_size"`
	LineHeight Value   `json:"line_height" yaml:"line_height"`
}

// WriteJSON writes the type scale as indented JSON
func WriteJSON(w io.Writer, scale *TypeScale) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildDocument(scale))
}

// WriteYAML writes the type scale as YAML
func WriteYAML(w io.Writer, scale *TypeScale) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(buildDocument(scale)); err != nil {
		return err
	}
	return encoder.Close()
}

// buildDocument converts a TypeScale to its export schema
func buildDocument(scale *TypeScale) Document {
	styles := make([]DocumentStyle, len(scale.Styles))
	for i, s := range scale.Styles {
		styles[i] = DocumentStyle{
			Name:       s.Name,
			ScaleIndex: s.ScaleIndex,
			FontSize:   s.FontSize,
			LineHeight: s.LineHeight,
		}
	}

	return Document{
		Version:        documentVersion,
		Unit:           string(scale.Unit),
		Base:           scale.Base,
		BaseLineHeight: scale.BaseLineHeight,
		Styles:         styles,
	}
}
