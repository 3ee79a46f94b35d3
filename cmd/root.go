package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"clipctl/pkg/clipboard"
	"clipctl/pkg/completions"
	"clipctl/pkg/config"
	"clipctl/pkg/errors"
	"clipctl/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var globalTimeout time.Duration
var logLevel string
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "clipctl",
	Short: "Cross-platform clipboard tool",
	Long: `CLI for reading and writing the system clipboard through external
programs: xsel/xclip on Linux, pbpaste/pbcopy on macOS and the PowerShell
clipboard cmdlets on Windows. Uses the XDG config directory for
configuration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded

		// Set log level: explicit flag takes precedence over env/config
		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger.SetLevel(level)

		// Bind the clipboard to this platform before any command body runs.
		// An unsupported platform is not fatal here: commands that never
		// touch the clipboard (version, config, check) still work, and the
		// clipboard calls themselves report the unsupported platform.
		if err := clipboard.Init(clipboardOptions(cfg)...); err != nil {
			logger.Warn().Err(err).Msg("No clipboard implementation for this platform")
		}
		return nil
	},
}

func clipboardOptions(cfg *config.Config) []clipboard.Option {
	var opts []clipboard.Option
	if cfg.HasCommandOverride() {
		opts = append(opts, clipboard.WithCommands(cfg.Commands.Read, cfg.Commands.Write))
	}
	if cfg.Linux.Tool != "" && cfg.Linux.Tool != config.LinuxToolAuto {
		opts = append(opts, clipboard.WithLinuxTool(cfg.Linux.Tool))
	}
	return opts
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("clipctl version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

// GetContext returns the context for a clipboard operation. Without --timeout
// a hung external command hangs the call, matching the library's contract.
func GetContext() (context.Context, context.CancelFunc) {
	if globalTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), globalTimeout)
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().DurationVar(&globalTimeout, "timeout", 0, "Timeout for clipboard commands (e.g., 5s); 0 means no timeout")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error, fatal, panic)")

	completions.RegisterCompletions(rootCmd)
}
