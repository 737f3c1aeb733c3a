// Package typescale computes baseline-aligned type scales and renders them
// as CSS.
//
// A type scale assigns a font size and a line height to every style in an
// ordered hierarchy (footnote, caption, p, h6 ... h1). Font sizes grow
// geometrically away from a base style; line heights snap up to a baseline
// grid.
//
// # Generation
//
//	config := typescale.DefaultConfig()
//	config.Unit = typescale.UnitREM
//	scale, err := typescale.Generate(config)
//
// With the defaults, p is 16 with a line height of 24, and h1 is 88/120.
//
// # Rendering
//
//	css := typescale.RenderCSS(scale, typescale.RenderOptions{Prefix: "ts-"})
//
// Tailwind users set RenderOptions.Tailwind to get an @theme block instead of
// utility classes. WriteOutput also supports JSON, YAML, TOML and Markdown.
//
// # CLI Tool
//
//	go install github.com/yacobolo/typescale/cmd/typescale@latest
//
// Run typescale --help for the available commands and flags.
package typescale

// Public API:
// - Generate(config Config) (*TypeScale, error)
// - RenderCSS(scale *TypeScale, opts RenderOptions) string
// - WriteOutput(w io.Writer, scale *TypeScale, format OutputFormat, opts RenderOptions) error
// - Rounder, ScaleIndex, FontSize, LineHeight for single values
