// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory by Find.
const DefaultConfigFile = "algocmp.yaml"

// Load reads path over Default() and validates the result.
// A missing file yields ErrConfigNotFound.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}

		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Find returns the configuration file to use:
//  1. configPath when non-empty and present,
//  2. algocmp.yaml in the working directory,
//
// or "" when neither exists.
func Find(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		return ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	p := filepath.Join(cwd, DefaultConfigFile)
	if _, err = os.Stat(p); err == nil {
		return p
	}

	return ""
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return enc.Close()
}
