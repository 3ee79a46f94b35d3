package cmd

import (
	"clipctl/pkg/clipboard"
	"clipctl/pkg/logger"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the clipboard",
	Long:  `Replace the clipboard contents with the empty string.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := GetContext()
		defer cancel()

		if err := clipboard.WriteText(ctx, ""); err != nil {
			return err
		}

		logger.Debug().Msg("Clipboard cleared")
		return nil
	},
}
