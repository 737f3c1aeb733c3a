package typescale

import (
	"fmt"
	"strings"

	"github.com/gosimple/slug"
)

// RenderOptions controls CSS rendering.
type RenderOptions struct {
	Prefix   string // prepended to utility class names ("ts-" -> .ts-text-h1)
	Tailwind bool   // emit a Tailwind @theme block instead of :root + classes
	Slugify  bool   // turn style names into lowercase, hyphenated identifiers
	Header   bool   // start with a generated-file comment
}

// headerComment marks rendered files as generated.
const headerComment = "/* Generated by typescale. Do not edit. */\n"

// RenderCSS serializes a type scale into CSS. Properties follow hierarchy
// order and numbers are formatted without locale.
func RenderCSS(scale *TypeScale, opts RenderOptions) string {
	var sb strings.Builder
	if opts.Header {
		sb.WriteString(headerComment)
	}
	if opts.Tailwind {
		writeTailwindTheme(&sb, scale, opts)
	} else {
		writeCustomProperties(&sb, scale, opts)
		writeUtilityClasses(&sb, scale, opts)
	}
	return sb.String()
}

// writeCustomProperties emits the :root block.
func writeCustomProperties(sb *strings.Builder, scale *TypeScale, opts RenderOptions) {
	sb.WriteString(":root {\n")
	for _, s := range scale.Styles {
		name := opts.Identifier(s.Name)
		fmt.Fprintf(sb, "  --font-size-%s: %s;\n", name, s.FontSize)
		fmt.Fprintf(sb, "  --line-height-%s: %s;\n", name, s.LineHeight)
	}
	sb.WriteString("}\n")
}

// writeUtilityClasses emits .text-* and .leading-* rules referencing the
// custom properties.
func writeUtilityClasses(sb *strings.Builder, scale *TypeScale, opts RenderOptions) {
	for _, s := range scale.Styles {
		name := opts.Identifier(s.Name)
		fmt.Fprintf(sb, ".%stext-%s {\n", opts.Prefix, name)
		fmt.Fprintf(sb, "  font-size: var(--font-size-%s);\n", name)
		fmt.Fprintf(sb, "  line-height: var(--line-height-%s);\n", name)
		sb.WriteString("}\n")
		fmt.Fprintf(sb, ".%sleading-%s {\n", opts.Prefix, name)
		fmt.Fprintf(sb, "  line-height: var(--line-height-%s);\n", name)
		sb.WriteString("}\n")
	}
}

// writeTailwindTheme emits theme variables only; Tailwind generates the
// utilities from them.
func writeTailwindTheme(sb *strings.Builder, scale *TypeScale, opts RenderOptions) {
	sb.WriteString("@theme {\n")
	for _, s := range scale.Styles {
		name := opts.Identifier(s.Name)
		fmt.Fprintf(sb, "  --text-%s: %s;\n", name, s.FontSize)
		fmt.Fprintf(sb, "  --text-%s--line-height: %s;\n", name, s.LineHeight)
		fmt.Fprintf(sb, "  --leading-%s: %s;\n", name, s.LineHeight)
	}
	sb.WriteString("}\n")
}

// Identifier returns the style name as used in property and class names.
func (opts RenderOptions) Identifier(name string) string {
	if opts.Slugify {
		return slug.Make(name)
	}
	return name
}
