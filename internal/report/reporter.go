package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// Options configures a Reporter.
type Options struct {
	UseColors        bool
	PrintLines       bool // show the offending source line with a caret
	PrintCheckerName bool // append " (typescale)"
}

// Reporter handles formatting and outputting drift issues
type Reporter struct {
	w                io.Writer
	useColors        bool
	printLines       bool
	printCheckerName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:                w,
		useColors:        opts.UseColors,
		printLines:       opts.PrintLines,
		printCheckerName: opts.PrintCheckerName,
	}
}

// PrintIssues outputs issues in golangci-lint format, ordered by file,
// line and column.
func (r *Reporter) PrintIssues(issues []Issue) {
	sorted := append([]Issue(nil), issues...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Pos, sorted[j].Pos
		if a.Filename != b.Filename {
			return natural.Less(a.Filename, b.Filename)
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range sorted {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (checker)
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	suffix := ""
	if r.printCheckerName {
		suffix = fmt.Sprintf(" (%s)", issue.FromChecker)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, suffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column,
// copying tabs from the source line so it lines up in any tab width.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}
	return padding.String() + "^"
}

// PrintSummary outputs the issue count and a per-file breakdown.
func (r *Reporter) PrintSummary(issues []Issue, filesChecked int) {
	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen,
			fmt.Sprintf("No drift in %s", pluralizeCount(filesChecked, "file", "files")), r.useColors))
		return
	}

	fileCounts := make(map[string]int)
	for _, issue := range issues {
		fileCounts[issue.Pos.Filename]++
	}
	files := make([]string, 0, len(fileCounts))
	for f := range fileCounts {
		files = append(files, f)
	}
	sort.Sort(natural.StringSlice(files))

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleRed,
		fmt.Sprintf("%s in %s:", pluralizeCount(len(issues), "issue", "issues"),
			pluralizeCount(len(files), "file", "files")), r.useColors))
	for _, f := range files {
		fmt.Fprintf(r.w, "* %s: %d\n", f, fileCounts[f])
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: run typescale generate to rewrite the output file", r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
