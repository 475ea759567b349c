package config

import (
	"fmt"
	"os"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig validates the configuration and returns a list of
// validation errors. An empty slice indicates the configuration is valid.
func ValidateConfig(cfg *Config) []error {
	var errs []error
	errs = append(errs, validateSchemaConfig(&cfg.Schema)...)
	errs = append(errs, validateLogConfig(&cfg.Logging)...)
	return errs
}

// validateSchemaConfig validates schema-loading configuration.
func validateSchemaConfig(cfg *SchemaConfig) []error {
	var errs []error
	for _, file := range cfg.Files {
		if file == "" {
			errs = append(errs, ValidationError{Field: "schema.files", Message: "file path cannot be empty"})
			continue
		}
		if _, err := os.Stat(file); err != nil {
			errs = append(errs, ValidationError{Field: "schema.files", Message: fmt.Sprintf("cannot stat %s: %v", file, err)})
		}
	}
	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(cfg *LogConfig) []error {
	var errs []error
	switch cfg.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", cfg.Level)})
	}
	switch cfg.Format {
	case "", "text", "json":
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: fmt.Sprintf("unknown format %q", cfg.Format)})
	}
	return errs
}
