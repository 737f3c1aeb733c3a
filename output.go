package typescale

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// OutputFormat represents the artifact written for a type scale
type OutputFormat string

const (
	// OutputCSS writes :root custom properties and utility classes
	OutputCSS OutputFormat = "css"
	// OutputTailwind writes a Tailwind v4 @theme block
	OutputTailwind OutputFormat = "tailwind"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
	// OutputYAML exports the same document as OutputJSON in YAML
	OutputYAML OutputFormat = "yaml"
	// OutputTOML writes a theme.toml fontSize table
	OutputTOML OutputFormat = "toml"
	// OutputMarkdown writes a shareable table
	OutputMarkdown OutputFormat = "markdown"
)

// ParseOutputFormat converts a format name into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return OutputCSS, nil
	case "tailwind", "tw":
		return OutputTailwind, nil
	case "json":
		return OutputJSON, nil
	case "yaml", "yml":
		return OutputYAML, nil
	case "toml":
		return OutputTOML, nil
	case "markdown", "md":
		return OutputMarkdown, nil
	default:
		return "", fmt.Errorf("%w %q (expected css, tailwind, json, yaml, toml or markdown)", ErrInvalidFormat, s)
	}
}

// DetermineOutputFormat selects the output format from flags and the output path.
// An explicit format wins; otherwise the file extension decides, falling
// back to CSS. The tailwind flag turns CSS output into a theme block.
func DetermineOutputFormat(formatFlag string, tailwind bool, outputPath string) (OutputFormat, error) {
	format := OutputCSS
	if formatFlag != "" {
		f, err := ParseOutputFormat(formatFlag)
		if err != nil {
			return "", err
		}
		format = f
	} else if ext := strings.TrimPrefix(filepath.Ext(outputPath), "."); ext != "" && ext != "css" {
		if f, err := ParseOutputFormat(ext); err == nil {
			format = f
		}
	}

	if format == OutputCSS && tailwind {
		format = OutputTailwind
	}
	return format, nil
}

// WriteOutput writes the type scale in the specified format
func WriteOutput(w io.Writer, scale *TypeScale, format OutputFormat, opts RenderOptions) error {
	switch format {
	case OutputCSS:
		opts.Tailwind = false
		_, err := io.WriteString(w, RenderCSS(scale, opts))
		return err
	case OutputTailwind:
		opts.Tailwind = true
		_, err := io.WriteString(w, RenderCSS(scale, opts))
		return err
	case OutputJSON:
		return WriteJSON(w, scale)
	case OutputYAML:
		return WriteYAML(w, scale)
	case OutputTOML:
		return WriteTOML(w, scale, opts)
	case OutputMarkdown:
		return WriteMarkdown(w, scale)
	default:
		return fmt.Errorf("%w %q", ErrInvalidFormat, format)
	}
}
