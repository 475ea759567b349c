package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Schema.Files)
	assert.False(t, cfg.Schema.StrictLoad)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestParse(t *testing.T) {
	data := []byte(`
schema:
  files:
    - schemas/nis.ldif
    - schemas/corba.ldif
  strictLoad: true
logging:
  level: debug
  format: json
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"schemas/nis.ldif", "schemas/corba.ldif"}, cfg.Schema.Files)
	assert.True(t, cfg.Schema.StrictLoad)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	// Unset fields keep their defaults.
	assert.Equal(t, "stdout", cfg.Logging.Output)
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("logging:\n  level: warn\n"))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Empty(t, cfg.Schema.Files)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("schema: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sema.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "nis.ldif")
	require.NoError(t, os.WriteFile(existing, []byte("dn: cn=nis\n"), 0o644))

	t.Run("valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Schema.Files = []string{existing}
		assert.Empty(t, ValidateConfig(cfg))
	})

	t.Run("missing schema file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Schema.Files = []string{filepath.Join(dir, "absent.ldif")}
		errs := ValidateConfig(cfg)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "schema.files")
	})

	t.Run("empty schema file path", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Schema.Files = []string{""}
		errs := ValidateConfig(cfg)
		require.Len(t, errs, 1)
		assert.Contains(t, errs[0].Error(), "cannot be empty")
	})

	t.Run("bad log level and format", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		cfg.Logging.Format = "xml"
		errs := ValidateConfig(cfg)
		assert.Len(t, errs, 2)
	})
}
