package completions

import (
	"clipctl/pkg/clipboard"

	"github.com/spf13/cobra"
)

// CompleteUtilityNames offers the external utilities the registry knows
// about, for `clipctl check`.
func CompleteUtilityNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return clipboard.KnownUtilities(), cobra.ShellCompDirectiveNoFileComp
}

func RegisterCompletions(root *cobra.Command) {
	root.RegisterFlagCompletionFunc("log-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error", "fatal", "panic"}, cobra.ShellCompDirectiveNoFileComp
	})
}
