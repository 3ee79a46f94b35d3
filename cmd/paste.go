package cmd

import (
	"fmt"
	"os"
	"strings"

	"clipctl/pkg/clipboard"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:     "paste",
	Aliases: []string{"read"},
	Short:   "Print the clipboard contents",
	Long:    `Print the current clipboard contents to standard output, verbatim. When stdout is a terminal and the content has no trailing newline, one is appended so the prompt starts on its own line.`,
	Example: `  clipctl paste

  # Pipe the clipboard into another command
  clipctl paste | wc -c`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := GetContext()
		defer cancel()

		text, err := clipboard.ReadText(ctx)
		if err != nil {
			return err
		}

		fmt.Print(text)
		if isatty.IsTerminal(os.Stdout.Fd()) && !strings.HasSuffix(text, "\n") {
			fmt.Println()
		}
		return nil
	},
}
