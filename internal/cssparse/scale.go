package cssparse

import "strings"

// Custom property prefixes and suffixes written by the renderer.
const (
	fontSizePrefix   = "--font-size-"
	lineHeightPrefix = "--line-height-"
	themeTextPrefix  = "--text-"
	themeLineSuffix  = "--line-height"
)

// StyleProperties pairs the declarations found for one style. Either
// pointer is nil when the stylesheet does not declare it.
type StyleProperties struct {
	Name       string
	FontSize   *Property
	LineHeight *Property
}

// Scale groups the sheet's type scale properties by style name, in order of
// first appearance. Both :root output (--font-size-x, --line-height-x) and
// Tailwind themes (--text-x, --text-x--line-height) are recognized;
// --leading-x repeats the line height and is ignored.
func (s *Sheet) Scale() []StyleProperties {
	var styles []StyleProperties
	index := make(map[string]int)

	entry := func(name string) *StyleProperties {
		if i, ok := index[name]; ok {
			return &styles[i]
		}
		index[name] = len(styles)
		styles = append(styles, StyleProperties{Name: name})
		return &styles[len(styles)-1]
	}

	for i := range s.Properties {
		prop := &s.Properties[i]
		name, isLineHeight, ok := classify(prop.Name)
		if !ok {
			continue
		}
		e := entry(name)
		if isLineHeight {
			e.LineHeight = prop
		} else {
			e.FontSize = prop
		}
	}
	return styles
}

// classify maps a custom property name to its style and kind.
func classify(prop string) (style string, isLineHeight, ok bool) {
	switch {
	case strings.HasPrefix(prop, fontSizePrefix):
		style, isLineHeight = strings.TrimPrefix(prop, fontSizePrefix), false
	case strings.HasPrefix(prop, lineHeightPrefix):
		style, isLineHeight = strings.TrimPrefix(prop, lineHeightPrefix), true
	case strings.HasPrefix(prop, themeTextPrefix) && strings.HasSuffix(prop, themeLineSuffix):
		style = strings.TrimSuffix(strings.TrimPrefix(prop, themeTextPrefix), themeLineSuffix)
		isLineHeight = true
	case strings.HasPrefix(prop, themeTextPrefix):
		style, isLineHeight = strings.TrimPrefix(prop, themeTextPrefix), false
	default:
		return "", false, false
	}
	return style, isLineHeight, style != ""
}
