package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yacobolo/typescale"
	"github.com/yacobolo/typescale/internal/cssparse"
)

// CheckerName is printed after each issue.
const CheckerName = "typescale"

// Issue is a difference between a generated scale and a stylesheet, in
// golangci-lint shape.
type Issue struct {
	FromChecker string   `json:"FromChecker"` // "typescale"
	Text        string   `json:"Text"`        // "font size of \"h1\" is 5rem, expected 5.5rem"
	Style       string   `json:"Style"`       // "h1"
	SourceLines []string `json:"SourceLines"` // Offending line, if any
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the location of an issue. Line and Column are zero
// when the issue concerns something absent from the file.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Issue messages
const (
	IssueFontSizeChanged   = "font size of %q is %s, expected %s"
	IssueLineHeightChanged = "line height of %q is %s, expected %s"
	IssueFontSizeMissing   = "font size of %q is missing"
	IssueLineHeightMissing = "line height of %q is missing"
	IssueStyleMissing      = "style %q is missing"
	IssueStyleUnexpected   = "style %q is not part of the type scale"
)

// Compare reports how sheet differs from the expected scale. Style names
// are matched through opts.Identifier, so slugified output compares cleanly.
func Compare(expected *typescale.TypeScale, opts typescale.RenderOptions, sheet *cssparse.Sheet) []Issue {
	found := make(map[string]cssparse.StyleProperties)
	var order []string
	for _, sp := range sheet.Scale() {
		found[sp.Name] = sp
		order = append(order, sp.Name)
	}

	var issues []Issue
	known := make(map[string]bool, expected.Len())
	for _, style := range expected.Styles {
		name := opts.Identifier(style.Name)
		known[name] = true

		sp, ok := found[name]
		if !ok {
			issues = append(issues, newIssue(sheet, nil, name, fmt.Sprintf(IssueStyleMissing, name)))
			continue
		}
		issues = append(issues, compareProperty(sheet, sp.FontSize, name, style.FontSize, IssueFontSizeChanged, IssueFontSizeMissing)...)
		issues = append(issues, compareProperty(sheet, sp.LineHeight, name, style.LineHeight, IssueLineHeightChanged, IssueLineHeightMissing)...)
	}

	for _, name := range order {
		if known[name] {
			continue
		}
		sp := found[name]
		prop := sp.FontSize
		if prop == nil {
			prop = sp.LineHeight
		}
		issues = append(issues, newIssue(sheet, prop, name, fmt.Sprintf(IssueStyleUnexpected, name)))
	}

	return issues
}

func compareProperty(sheet *cssparse.Sheet, prop *cssparse.Property, name string, want typescale.Value, changed, missing string) []Issue {
	if prop == nil {
		return []Issue{newIssue(sheet, nil, name, fmt.Sprintf(missing, name))}
	}
	if sameValue(prop.Value, want.String()) {
		return nil
	}
	return []Issue{newIssue(sheet, prop, name, fmt.Sprintf(changed, name, prop.Value, want.String()))}
}

func newIssue(sheet *cssparse.Sheet, prop *cssparse.Property, style, text string) Issue {
	issue := Issue{
		FromChecker: CheckerName,
		Text:        text,
		Style:       style,
		Pos:         IssuePos{Filename: sheet.Filename},
	}
	if prop != nil {
		issue.Pos.Line = prop.Line
		issue.Pos.Column = prop.Column
		if line := sheet.Line(prop.Line); line != "" {
			issue.SourceLines = []string{line}
		}
	}
	return issue
}

// sameValue compares two CSS values by number and unit, so "1.50rem" and
// "1.5rem" are equal.
func sameValue(got, want string) bool {
	if got == want {
		return true
	}
	gn, gu, gok := splitNumber(got)
	wn, wu, wok := splitNumber(want)
	return gok && wok && gu == wu && gn == wn
}

// splitNumber separates a leading decimal number from its unit suffix.
func splitNumber(s string) (float64, string, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && strings.ContainsRune("+-.0123456789", rune(s[end])) {
		end++
	}
	n, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, "", false
	}
	return n, s[end:], true
}
