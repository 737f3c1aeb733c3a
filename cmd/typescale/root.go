package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale"
)

const (
	defaultConfigPath = ".typescale.yaml"
	defaultOutput     = "typescale.css"
)

var rootCmd = &cobra.Command{
	Use:   "typescale",
	Short: "Generate a baseline-aligned CSS type scale",
	Long: `Generate font sizes and line heights for a hierarchy of text styles.
Sizes grow geometrically away from a base style and line heights snap
to a baseline grid. Output is CSS custom properties with utility classes,
a Tailwind @theme block, or a JSON, YAML, TOML or Markdown document.

Help is available with --help; -h is short for --hierarchy.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig is called here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	d := typescale.DefaultConfig()

	// Scale parameters are persistent so generate, preview and check share them.
	f := rootCmd.PersistentFlags()
	f.StringSliceP("hierarchy", "h", d.Hierarchy, "Hierarchy of font styles, smallest first")
	f.Float64P("base", "b", d.Base, "Base font size")
	f.IntP("base-index", "i", d.BaseIndex, "Index of the base font size in the hierarchy")
	f.Float64P("multiplier", "m", d.Multiplier, "Increment multiplier")
	f.IntP("steps", "s", d.Steps, "Steps between multiples")
	f.Float64P("round", "r", 0.25, "Font size rounding factor")
	f.StringP("round-direction", "d", string(typescale.RoundUp), "Rounding direction: up|down|nearest")
	f.Float64P("grid-height", "g", d.GridHeight, "Line height grid size")
	f.Float64P("line-height-multiplier", "l", d.LineHeightMultiplier, "Line height multiplier")
	f.StringP("unit", "u", "", "CSS unit: cm|mm|Q|in|pc|pt|px|em|rem (empty or none for plain numbers)")
	f.String("scale-index", "power", "Scale index curve: power|linear|fibonacci")
	f.StringP("prefix", "p", "", "Prefix for utility classes")
	f.BoolP("tailwind", "t", false, "Write a Tailwind @theme block instead of utility classes")
	f.Bool("slugify", false, "Turn style names into lowercase, hyphenated identifiers")
	f.StringP("output", "o", defaultOutput, "Output file path (- for stdout)")
	f.StringP("format", "f", "", "Output format: css|tailwind|json|yaml|toml|markdown (default: from --output extension)")

	// Global settings
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", false, "Force color output")
	f.String("config", defaultConfigPath, "Config file path")
	// Declared here so cobra does not add its own help flag, whose -h
	// shorthand would collide with --hierarchy.
	f.Bool("help", false, "Help for typescale")

	registerCompletions()

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
