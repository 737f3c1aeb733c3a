package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale"
	"github.com/yacobolo/typescale/internal/logging"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
//
// Config keys are the flag names, so an unchanged flag default never
// shadows a value from the file or the environment.
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// TYPESCALE_BASE_INDEX -> base-index
	if err := k.Load(env.Provider("TYPESCALE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "TYPESCALE_")),
			"_", "-",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state.
// Every invalid option is reported, not just the first.
func buildConfig() (typescale.Config, error) {
	config := typescale.DefaultConfig()
	config.Hierarchy = getStrings("hierarchy", typescale.DefaultHierarchy)
	config.Base = getFloat64("base", config.Base)
	config.BaseIndex = getInt("base-index", config.BaseIndex)
	config.Multiplier = getFloat64("multiplier", config.Multiplier)
	config.Steps = getInt("steps", config.Steps)
	config.GridHeight = getFloat64("grid-height", config.GridHeight)
	config.LineHeightMultiplier = getFloat64("line-height-multiplier", config.LineHeightMultiplier)

	var errs error

	unit, err := typescale.ParseUnit(getString("unit", ""))
	errs = multierr.Append(errs, err)
	config.Unit = unit

	scaleIndex, err := typescale.ScaleIndexByName(getString("scale-index", "power"))
	errs = multierr.Append(errs, err)
	config.ScaleIndex = scaleIndex

	direction, err := typescale.ParseRoundDirection(getString("round-direction", string(typescale.RoundUp)))
	if err != nil {
		errs = multierr.Append(errs, err)
	} else {
		round, err := typescale.Rounder(getFloat64("round", 0.25), direction)
		errs = multierr.Append(errs, err)
		config.Round = round
	}

	if errs != nil {
		return typescale.Config{}, errs
	}
	return config, nil
}

// buildRenderOptions constructs RenderOptions from koanf state.
func buildRenderOptions() typescale.RenderOptions {
	return typescale.RenderOptions{
		Prefix:   getString("prefix", ""),
		Tailwind: getBool("tailwind", false),
		Slugify:  getBool("slugify", false),
		Header:   true,
	}
}

// newLogger returns the console logger selected by --quiet and --verbose.
func newLogger() *zap.Logger {
	return logging.New(logging.LevelFor(getBool("quiet", false), getBool("verbose", false)))
}

// getString returns the value at key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the value at key, or defaultVal when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}

// getFloat64 returns the value at key, or defaultVal when unset.
func getFloat64(key string, defaultVal float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return defaultVal
}

// getStrings returns the list at key. YAML lists, repeated flags and
// comma-separated strings (from the environment) are all accepted.
func getStrings(key string, defaultVal []string) []string {
	if !k.Exists(key) {
		return defaultVal
	}

	var raw []string
	switch v := k.Get(key).(type) {
	case string:
		raw = []string{v}
	default:
		raw = k.Strings(key)
	}

	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
