// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/pem-codec/src/pem"
)

// configEnv names the environment variable consulted when no --config flag is given.
const configEnv = "PEM_CODEC_CONFIG_FILE"

// defaultMaxInputBytes caps how much input a single command reads.
const defaultMaxInputBytes = 64 << 20

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the CLI configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given with --config
// or the PEM_CODEC_CONFIG_FILE environment variable. Command-line flags
// override file values, and file values override built-in defaults.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Defaults: Encoding settings used when the matching flag is not set
	Defaults struct {
		// Label: Block label for the encode commands
		Label string `json:"label" yaml:"label"`
		// EOL: Line ending name (lf, crlf or cr)
		EOL string `json:"eol" yaml:"eol"`
		// LineWidth: Base64 characters per body line
		LineWidth int `json:"lineWidth" yaml:"lineWidth"`
	} `json:"defaults" yaml:"defaults"`

	// Limits: Resource limits for input handling
	Limits struct {
		// MaxInputBytes: Largest input accepted from a file or stdin
		MaxInputBytes int64 `json:"maxInputBytes" yaml:"maxInputBytes"`
	} `json:"limits" yaml:"limits"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// loadConfig loads CLI configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. PEM_CODEC_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
//
// Non-positive numbers fall back to their defaults. An unknown line ending
// name or an invalid label is an error, since it would fail every encode.
func loadConfig(configPath string) (*Config, error) {
	config := &Config{}

	config.Defaults.EOL = "lf"
	config.Defaults.LineWidth = pem.DefaultLineWidth
	config.Limits.MaxInputBytes = defaultMaxInputBytes

	if configPath == "" {
		configPath = os.Getenv(configEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		if config.Defaults.LineWidth <= 0 {
			config.Defaults.LineWidth = pem.DefaultLineWidth
		}
		if config.Limits.MaxInputBytes <= 0 {
			config.Limits.MaxInputBytes = defaultMaxInputBytes
		}
	}

	if _, err := pem.ParseEOL(config.Defaults.EOL); err != nil {
		return nil, fmt.Errorf("config defaults.eol: %w", err)
	}
	if config.Defaults.Label != "" {
		if err := pem.ValidateLabel(config.Defaults.Label); err != nil {
			return nil, fmt.Errorf("config defaults.label: %w", err)
		}
	}

	return config, nil
}
