// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for trello-cli with
// support for multiple configuration sources and a well-defined precedence
// order. The tool works with zero configuration; a config file only becomes
// necessary to point at a different endpoint or to rename the credential
// environment variables.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .trello-cli.yaml (current directory)
//   - .trello-cli.yml (current directory)
//   - ~/.trello/config.yaml
//   - ~/.trello/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Try to load config file if path is provided
	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		// Try default locations
		defaultPaths := []string{
			".trello-cli.yaml",
			".trello-cli.yml",
			filepath.Join(os.Getenv("HOME"), ".trello", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".trello", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("TRELLO_API_ENDPOINT"); endpoint != "" {
		cfg.Trello.BaseURL = endpoint
	}
	if level := os.Getenv("TRELLO_LOG_LEVEL"); level != "" {
		cfg.Defaults.LogLevel = level
	}
}

// Validate checks if the configuration contains valid values. It ensures
// the API endpoint and the credential environment variable names are not
// empty. This should be called after loading configuration to catch invalid
// settings early.
func (c *Config) Validate() error {
	if c.Trello.BaseURL == "" {
		return fmt.Errorf("Trello API endpoint cannot be empty")
	}
	if c.Trello.KeyEnv == "" {
		return fmt.Errorf("key environment variable name cannot be empty")
	}
	if c.Trello.TokenEnv == "" {
		return fmt.Errorf("token environment variable name cannot be empty")
	}
	return nil
}
