package typescale

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleStyleScale is {a: {fontSize: 16, lineHeight: 24}}.
func singleStyleScale() *TypeScale {
	scale := &TypeScale{Base: 16, BaseLineHeight: 24}
	scale.set(Style{Name: "a", FontSize: Value{Raw: 16}, LineHeight: Value{Raw: 24}})
	return scale
}

func TestRenderCSS(t *testing.T) {
	css := RenderCSS(singleStyleScale(), RenderOptions{})

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--font-size-a: 16;")
	assert.Contains(t, css, "--line-height-a: 24;")
	assert.Contains(t, css, ".text-a {")
	assert.Contains(t, css, ".leading-a {")
	assert.NotContains(t, css, "@theme")

	expected := `:root {
  --font-size-a: 16;
  --line-height-a: 24;
}
.text-a {
  font-size: var(--font-size-a);
  line-height: var(--line-height-a);
}
.leading-a {
  line-height: var(--line-height-a);
}
`
	assert.Equal(t, expected, css)
}

func TestRenderCSSTailwind(t *testing.T) {
	css := RenderCSS(singleStyleScale(), RenderOptions{Tailwind: true, Prefix: "ts-"})

	assert.Contains(t, css, "@theme {")
	assert.Contains(t, css, "--text-a: 16;")
	assert.Contains(t, css, "--text-a--line-height: 24;")
	assert.Contains(t, css, "--leading-a: 24;")
	assert.NotContains(t, css, ".text-a {")
	assert.NotContains(t, css, ".ts-text-a {")
	assert.NotContains(t, css, ":root")
}

func TestRenderCSSPrefix(t *testing.T) {
	css := RenderCSS(singleStyleScale(), RenderOptions{Prefix: "ts-"})

	assert.Contains(t, css, ".ts-text-a {")
	assert.Contains(t, css, ".ts-leading-a {")
	// Custom properties are never prefixed.
	assert.Contains(t, css, "--font-size-a: 16;")
}

func TestRenderCSSHeader(t *testing.T) {
	css := RenderCSS(singleStyleScale(), RenderOptions{Header: true})
	assert.True(t, strings.HasPrefix(css, "/* Generated by typescale"))

	css = RenderCSS(singleStyleScale(), RenderOptions{})
	assert.True(t, strings.HasPrefix(css, ":root {"))
}

func TestRenderCSSSlugify(t *testing.T) {
	config := DefaultConfig()
	config.Hierarchy = []string{"Small Print", "Body", "Display XL"}
	config.BaseIndex = 1

	scale, err := Generate(config)
	require.NoError(t, err)

	css := RenderCSS(scale, RenderOptions{Slugify: true})
	assert.Contains(t, css, "--font-size-small-print: ")
	assert.Contains(t, css, ".text-display-xl {")
	assert.Contains(t, css, "--line-height-body: 24;")

	raw := RenderCSS(scale, RenderOptions{})
	assert.Contains(t, raw, "--font-size-Small Print: ")
}

func TestRenderCSSFollowsHierarchyOrder(t *testing.T) {
	config := DefaultConfig()
	config.Unit = UnitREM

	scale, err := Generate(config)
	require.NoError(t, err)

	for _, tailwind := range []bool{false, true} {
		css := RenderCSS(scale, RenderOptions{Tailwind: tailwind})

		prefix := "--font-size-"
		if tailwind {
			prefix = "--text-"
		}
		last := -1
		for _, name := range DefaultHierarchy {
			pos := strings.Index(css, prefix+name+":")
			require.GreaterOrEqual(t, pos, 0, "%s%s missing", prefix, name)
			assert.Greater(t, pos, last, "%s out of order", name)
			last = pos
		}
		assert.Equal(t, css, RenderCSS(scale, RenderOptions{Tailwind: tailwind}))
	}
}

func TestRenderCSSUnits(t *testing.T) {
	config := DefaultConfig()
	config.Unit = UnitREM

	scale, err := Generate(config)
	require.NoError(t, err)

	css := RenderCSS(scale, RenderOptions{})
	assert.Contains(t, css, "--font-size-p: 1rem;")
	assert.Contains(t, css, "--line-height-p: 1rem;")
	assert.Contains(t, css, "--font-size-h1: 5.5rem;")
	assert.Contains(t, css, "--line-height-h1: 5rem;")
}
