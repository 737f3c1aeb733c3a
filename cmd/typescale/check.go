package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale"
	"github.com/yacobolo/typescale/internal/cssparse"
	"github.com/yacobolo/typescale/internal/report"
	"go.uber.org/zap"
)

// errDrift is returned when a checked stylesheet differs from the scale.
var errDrift = errors.New("type scale drift")

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Check stylesheets against the configured type scale",
	Long: `Regenerate the type scale and compare it with the custom properties
declared in existing stylesheets. Files default to --output and accept
doublestar globs. Exits non-zero when anything differs.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-checker-name", true, "Show (typescale) suffix on issues")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	output := getString("output", defaultOutput)
	format, err := typescale.DetermineOutputFormat(getString("format", ""), getBool("tailwind", false), output)
	if err != nil {
		return err
	}
	if format != typescale.OutputCSS && format != typescale.OutputTailwind {
		return fmt.Errorf("check compares CSS output, not %s", format)
	}

	scale, err := generateScale(log)
	if err != nil {
		return err
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = []string{output}
	}
	files, stats, err := cssparse.ExpandGlobs(patterns)
	if err != nil {
		return fmt.Errorf("expanding file patterns: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no stylesheets match %v", patterns)
	}
	log.Debug("Checking stylesheets",
		zap.Int("files", stats.FilesSelected),
		zap.Int("skipped", stats.FilesSkipped))

	opts := buildRenderOptions()
	parser := cssparse.NewParser(log)

	var issues []report.Issue
	for _, path := range files {
		sheet, err := parser.ParseFile(path)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		issues = append(issues, report.Compare(scale, opts, sheet)...)
	}

	if !getBool("quiet", false) {
		r := report.NewReporter(cmd.OutOrStdout(), report.Options{
			UseColors:        report.ShouldUseColors(getBool("color", false)),
			PrintLines:       getBool("print-lines", true),
			PrintCheckerName: getBool("print-checker-name", true),
		})
		r.PrintIssues(issues)
		r.PrintSummary(issues, len(files))
	}

	if len(issues) > 0 {
		return fmt.Errorf("%w: %d issues in %d files", errDrift, len(issues), len(files))
	}
	return nil
}
