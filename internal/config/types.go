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

// Package config types define the configuration structures used throughout
// trello-cli. These types represent settings that can be loaded from YAML
// configuration files or environment variables.
package config

// Config represents the complete configuration for trello-cli. It
// consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	Trello   TrelloConfig   `yaml:"trello"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// TrelloConfig contains Trello-specific settings: the API endpoint and the
// names of the environment variables consulted for credentials when the
// --key and --token flags are not given. Overriding the endpoint allows
// tests and proxies to stand in for the real API.
type TrelloConfig struct {
	BaseURL  string `yaml:"base_url"`
	KeyEnv   string `yaml:"key_env"`
	TokenEnv string `yaml:"token_env"`
}

// DefaultsConfig contains settings that apply to every invocation unless
// overridden by environment variables.
type DefaultsConfig struct {
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults target the public Trello API with diagnostic
// logging disabled.
func DefaultConfig() *Config {
	return &Config{
		Trello: TrelloConfig{
			BaseURL:  "https://api.trello.com",
			KeyEnv:   "TRELLO_API_KEY",
			TokenEnv: "TRELLO_API_TOKEN",
		},
		Defaults: DefaultsConfig{
			LogLevel: "",
		},
	}
}
