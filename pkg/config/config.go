package config

import (
	"fmt"
	"os"
	"path/filepath"

	"clipctl/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	LinuxToolAuto  = "auto"
	LinuxToolXsel  = "xsel"
	LinuxToolXclip = "xclip"
)

// Config holds the complete clipctl configuration
type Config struct {
	LogLevel string         `yaml:"log_level,omitempty"`
	Linux    LinuxConfig    `yaml:"linux,omitempty"`
	Commands CommandsConfig `yaml:"commands,omitempty"`
}

// LinuxConfig selects the Linux clipboard utility. "auto" probes for xsel
// and falls back to xclip.
type LinuxConfig struct {
	Tool string `yaml:"tool,omitempty"`
}

// CommandsConfig replaces the built-in command pair entirely. Both commands
// must be given together; the first element is the executable.
type CommandsConfig struct {
	Read  []string `yaml:"read,omitempty,flow"`
	Write []string `yaml:"write,omitempty,flow"`
}

// Load loads the configuration. A missing config file yields defaults.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "clipctl", "config.yaml"), nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("CLIPCTL_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if tool := os.Getenv("CLIPCTL_LINUX_TOOL"); tool != "" {
		cfg.Linux.Tool = tool
	}
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Linux:    LinuxConfig{Tool: LinuxToolAuto},
	}
}

// Validate checks config invariants. Command overrides must come as a
// non-empty pair: a registry entry may never hold an empty command spec.
func (c *Config) Validate() error {
	switch c.Linux.Tool {
	case "", LinuxToolAuto, LinuxToolXsel, LinuxToolXclip:
	default:
		return errors.ConfigError(fmt.Sprintf("invalid linux.tool '%s' (expected auto, xsel or xclip)", c.Linux.Tool))
	}

	hasRead := len(c.Commands.Read) > 0
	hasWrite := len(c.Commands.Write) > 0
	if hasRead != hasWrite {
		return errors.ConfigError("commands.read and commands.write must be set together")
	}

	return nil
}

// HasCommandOverride reports whether the config replaces the built-in
// command pair.
func (c *Config) HasCommandOverride() bool {
	return len(c.Commands.Read) > 0 && len(c.Commands.Write) > 0
}

// Save saves the configuration to file
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}
