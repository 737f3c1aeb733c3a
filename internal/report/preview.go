package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/yacobolo/typescale"
)

// PreviewTable builds a table of style, scale index, font size and line
// height. The row whose scale index is zero holds the base size.
func PreviewTable(scale *typescale.TypeScale, opts typescale.RenderOptions, useColors bool) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, scale.Len())
	baseRow := -1
	for i, s := range scale.Styles {
		if s.ScaleIndex == 0 {
			baseRow = i
		}
		rows = append(rows, []string{
			opts.Identifier(s.Name),
			strconv.FormatFloat(s.ScaleIndex, 'f', 3, 64),
			s.FontSize.String(),
			s.LineHeight.String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Style", "Scale index", "Font size", "Line height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cell
			if col > 0 {
				style = style.Align(lipgloss.Right)
			}
			if !useColors {
				return style
			}
			switch row {
			case table.HeaderRow:
				return style.Inherit(StyleCyan)
			case baseRow:
				return style.Inherit(StyleGreen)
			}
			return style
		})
	if useColors {
		t = t.BorderStyle(StyleGray)
	}
	return t
}

// PrintPreview writes the preview table followed by the scale parameters.
func PrintPreview(w io.Writer, scale *typescale.TypeScale, opts typescale.RenderOptions, useColors bool) error {
	unit := string(scale.Unit)
	if unit == "" {
		unit = "none"
	}
	if _, err := fmt.Fprintln(w, PreviewTable(scale, opts, useColors).String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, RenderStyle(StyleGray,
		fmt.Sprintf("base %s, base line height %s, unit %s",
			strconv.FormatFloat(scale.Base, 'f', -1, 64),
			strconv.FormatFloat(scale.BaseLineHeight, 'f', -1, 64), unit), useColors))
	return err
}
