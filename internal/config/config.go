// Package config provides configuration parsing and validation for the
// sema directory core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the complete configuration.
type Config struct {
	Schema  SchemaConfig `yaml:"schema"`
	Logging LogConfig    `yaml:"logging"`
}

// SchemaConfig holds schema-loading configuration.
type SchemaConfig struct {
	// Files lists LDIF schema files to register on top of the bootstrap
	// set, in load order.
	Files []string `yaml:"files"`
	// StrictLoad aborts a load on the first skipped element instead of
	// collecting and reporting them.
	StrictLoad bool `yaml:"strictLoad"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads and parses a YAML config file, applying defaults for any
// omitted values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML config data, applying defaults for any omitted values.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
