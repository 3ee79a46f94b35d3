package cmd

import (
	"fmt"

	"clipctl/pkg/clipboard"
	"clipctl/pkg/completions"
	"clipctl/pkg/errors"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:               "check <command>",
	Short:             "Check whether an external command is installed",
	Long:              `Probe the search path for an external command, the same way the clipboard registry chooses between xsel and xclip. Exits zero when the command is found.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completions.CompleteUtilityNames,
	Example: `  clipctl check xsel
  clipctl check pbcopy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !clipboard.CommandExists(name) {
			return errors.MissingUtilityError(name)
		}
		fmt.Printf("%s: found\n", name)
		return nil
	},
}
