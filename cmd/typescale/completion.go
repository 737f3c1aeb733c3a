package main

import (
	"github.com/spf13/cobra"
	"github.com/yacobolo/typescale"
)

var completionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion scripts",
	Long:      `Generate shell completion scripts for typescale commands and flags.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

// fixedChoices completes a flag from a closed set of values.
func fixedChoices(choices ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return choices, cobra.ShellCompDirectiveNoFileComp
	}
}

// registerCompletions must run after the root flags are defined.
func registerCompletions() {
	units := []string{"none"}
	for _, u := range typescale.Units() {
		units = append(units, string(u))
	}

	_ = rootCmd.RegisterFlagCompletionFunc("unit", fixedChoices(units...))
	_ = rootCmd.RegisterFlagCompletionFunc("round-direction", fixedChoices(
		string(typescale.RoundUp), string(typescale.RoundDown), string(typescale.RoundNearest)))
	_ = rootCmd.RegisterFlagCompletionFunc("scale-index", fixedChoices("power", "linear", "fibonacci"))
	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedChoices(
		string(typescale.OutputCSS), string(typescale.OutputTailwind), string(typescale.OutputJSON),
		string(typescale.OutputYAML), string(typescale.OutputTOML), string(typescale.OutputMarkdown)))
}
