// Package config loads process configuration: the Linear API
// credential and optional overrides from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvAPIKey is the environment variable holding the Linear API key.
const EnvAPIKey = "LINEAR_API_KEY"

// ErrNoAPIKey is the fatal startup error for a missing credential.
var ErrNoAPIKey = errors.New("No Linear API key provided")

// Config holds everything the process needs to start.
type Config struct {
	// APIKey authenticates against the Linear API. From the config
	// file, or LINEAR_API_KEY when the file doesn't set it.
	APIKey string `yaml:"api_key"`

	// Endpoint overrides the GraphQL endpoint. Empty means the
	// public Linear API.
	Endpoint string `yaml:"endpoint"`
}

// Load reads the optional YAML config file at path (skipped when path
// is empty or the file doesn't exist) and fills the credential from
// the environment if the file didn't provide one. A missing API key
// is a fatal configuration error.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parsing %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.APIKey == "" {
		return Config{}, ErrNoAPIKey
	}
	return cfg, nil
}
