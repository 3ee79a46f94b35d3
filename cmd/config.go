package cmd

import (
	"fmt"
	"os"

	"clipctl/pkg/config"
	"clipctl/pkg/errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage clipctl configuration",
	Long:  `Inspect and bootstrap the clipctl configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the effective configuration after file and environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Log level:  %s\n", cfg.LogLevel)
		fmt.Printf("Linux tool: %s\n", func() string {
			if cfg.Linux.Tool == "" {
				return config.LinuxToolAuto
			}
			return cfg.Linux.Tool
		}())
		if cfg.HasCommandOverride() {
			fmt.Printf("Read command override:  %v\n", cfg.Commands.Read)
			fmt.Printf("Write command override: %v\n", cfg.Commands.Write)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		fmt.Println(path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
		}
		if _, err := os.Stat(path); err == nil {
			return errors.NewWithSuggestion(errors.ExitCodeFileOperation,
				fmt.Sprintf("Config file already exists: %s", path),
				"Edit it directly or remove it before running 'clipctl config init' again.")
		}
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
