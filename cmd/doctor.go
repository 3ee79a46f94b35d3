package cmd

import (
	"fmt"

	"clipctl/pkg/clipboard"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Show how the clipboard resolves on this system",
	Long:  `Report the detected operating system, the command pair the registry resolved for it, and which of the known clipboard utilities are installed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)

		current := clipboard.Current()
		fmt.Printf("Operating system: %s\n", current)

		cb, err := clipboard.New(clipboardOptions(cfg)...)
		if err != nil {
			red.Println("Clipboard support: unavailable")
			fmt.Printf("  %v\n", err)
		} else {
			green.Println("Clipboard support: ok")
			entry := cb.Entry()
			fmt.Printf("Read command:  %s\n", entry.Read)
			fmt.Printf("Write command: %s\n", entry.Write)
		}

		fmt.Println("Utilities:")
		for _, name := range clipboard.KnownUtilities() {
			if clipboard.CommandExists(name) {
				green.Printf("  %-11s found\n", name)
			} else {
				red.Printf("  %-11s not found\n", name)
			}
		}
		return nil
	},
}
