package typescale

import (
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ThemeFile mirrors the fontSize table of a theme.toml file:
//
//	[theme.fontSize]
//	h1 = ["5.5rem", "5rem"]
type ThemeFile struct {
	Theme ThemeSection `toml:"theme"`
}

// ThemeSection holds font size pairs keyed by style name.
type ThemeSection struct {
	FontSize map[string][]string `toml:"fontSize"`
}

// WriteTOML writes the type scale as a theme.toml fontSize table.
// TOML tables are unordered, so keys come out sorted.
func WriteTOML(w io.Writer, scale *TypeScale, opts RenderOptions) error {
	theme := ThemeFile{Theme: ThemeSection{FontSize: make(map[string][]string, scale.Len())}}
	for _, s := range scale.Styles {
		theme.Theme.FontSize[opts.Identifier(s.Name)] = []string{s.FontSize.String(), s.LineHeight.String()}
	}

	encoder := toml.NewEncoder(w)
	if err := encoder.Encode(theme); err != nil {
		return fmt.Errorf("encoding theme: %w", err)
	}
	return nil
}

// WriteMarkdown writes the type scale as a Markdown table
func WriteMarkdown(w io.Writer, scale *TypeScale) error {
	var sb strings.Builder

	sb.WriteString("# Type Scale\n\n")
	unit := string(scale.Unit)
	if unit == "" {
		unit = "none"
	}
	fmt.Fprintf(&sb, "Base size **%s**, base line height **%s**, unit **%s**.\n\n",
		formatNumber(scale.Base), formatNumber(scale.BaseLineHeight), unit)

	sb.WriteString("| Style | Scale index | Font size | Line height |\n")
	sb.WriteString("|-------|------------:|----------:|------------:|\n")
	for _, s := range scale.Styles {
		fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n",
			escapeMarkdown(s.Name), formatRatio(s.ScaleIndex), s.FontSize, s.LineHeight)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// escapeMarkdown keeps style names from breaking the table layout
func escapeMarkdown(s string) string {
	return strings.NewReplacer("|", "\\|", "`", "'").Replace(s)
}
