package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .typescale.yaml config file",
	Long:  `Create a .typescale.yaml configuration file in the current directory with the default scale.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigPath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigPath)
		}

		if err := os.WriteFile(defaultConfigPath, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigPath)
		return nil
	},
}

// Keys match the command line flags.
const defaultConfig = `# typescale configuration
# Every key can also be set with a TYPESCALE_ environment variable,
# e.g. TYPESCALE_BASE_INDEX=3.

# Styles, smallest first
hierarchy:
  - footnote
  - caption
  - p
  - h6
  - h5
  - h4
  - h3
  - h2
  - h1
base-index: 2            # position of the base size in the hierarchy

# Font sizes
base: 16
multiplier: 2            # growth per "steps" styles
steps: 5
scale-index: power       # power | linear | fibonacci
round: 0.25
round-direction: up      # up | down | nearest

# Line heights
grid-height: 8
line-height-multiplier: 1.3

# Output
unit: none               # none | cm | mm | Q | in | pc | pt | px | em | rem
prefix: ""
tailwind: false
slugify: false
output: typescale.css
format: ""               # css | tailwind | json | yaml | toml | markdown (empty: from output extension)
verbose: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
