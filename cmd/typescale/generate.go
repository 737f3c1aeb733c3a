package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale"
	"go.uber.org/zap"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Write the type scale to the output file",
	Long: `Compute the type scale and write it to --output.
The format follows --format, or the output file extension when unset.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

// generateScale builds the config from koanf state and runs the generator.
func generateScale(log *zap.Logger) (*typescale.TypeScale, error) {
	config, err := buildConfig()
	if err != nil {
		return nil, err
	}

	scale, err := typescale.NewGenerator(log).Generate(config)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	return scale, nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	scale, err := generateScale(log)
	if err != nil {
		return err
	}

	output := getString("output", defaultOutput)
	format, err := typescale.DetermineOutputFormat(getString("format", ""), getBool("tailwind", false), output)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := typescale.WriteOutput(&buf, scale, format, buildRenderOptions()); err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	log.Debug("Wrote type scale",
		zap.String("path", output),
		zap.String("format", string(format)),
		zap.Int("styles", scale.Len()),
		zap.Int("bytes", buf.Len()))

	if !getBool("quiet", false) {
		fmt.Fprintf(cmd.OutOrStdout(), "Type scale written to %s\n", output)
	}
	return nil
}
