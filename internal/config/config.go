// Package config loads fman's settings from the user config file, with
// FMAN_* environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const configPath = "~/.config/fman/config.yaml"

// Config represents the fman configuration.
type Config struct {
	// Root overrides workspace-root discovery.
	Root string `yaml:"root" envconfig:"ROOT"`
	// NativePrompts asks inside Neovim instead of the terminal.
	NativePrompts bool      `yaml:"native_prompts" envconfig:"NATIVE_PROMPTS"`
	Log           LogConfig `yaml:"log"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`
	File  string `yaml:"file" envconfig:"LOG_FILE"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file if present, applies environment overrides,
// and fills in the workspace root.
func Load() (*Config, error) {
	cfg := Default()

	path, err := homedir.Expand(configPath)
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process("fman", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	if cfg.Root == "" {
		cfg.Root = WorkspaceRoot()
	}
	return cfg, nil
}

// Parse parses a configuration document. Used by tests and embedders.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// WorkspaceRoot returns the enclosing git repository's top level, falling
// back to the current working directory.
func WorkspaceRoot() string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err == nil {
		if root := strings.TrimSpace(string(output)); root != "" {
			return root
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
