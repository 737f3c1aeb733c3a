package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale/internal/report"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the type scale as a table without writing files",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()

		scale, err := generateScale(log)
		if err != nil {
			return err
		}

		useColors := report.ShouldUseColors(getBool("color", false))
		return report.PrintPreview(cmd.OutOrStdout(), scale, buildRenderOptions(), useColors)
	},
}
