package cmd

import (
	"io"
	"os"
	"strings"

	"clipctl/pkg/clipboard"
	"clipctl/pkg/errors"
	"clipctl/pkg/logger"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:     "copy [text...]",
	Aliases: []string{"write"},
	Short:   "Write text to the clipboard",
	Long:    `Write text to the system clipboard. Arguments are joined with spaces; without arguments the text is read from standard input.`,
	Example: `  # Copy a literal string
  clipctl copy "hello world"

  # Copy the output of another command
  git rev-parse HEAD | clipctl copy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		if len(args) > 0 {
			text = strings.Join(args, " ")
		} else {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read standard input", err)
			}
			text = string(data)
		}

		ctx, cancel := GetContext()
		defer cancel()

		if err := clipboard.WriteText(ctx, text); err != nil {
			return err
		}

		logger.Debug().Int("bytes", len(text)).Msg("Copied to clipboard")
		return nil
	},
}
