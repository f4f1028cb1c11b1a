package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults with no file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.CredentialsFile)
	})

	t.Run("hcl file", func(t *testing.T) {
		dir := t.TempDir()
		creds := filepath.Join(dir, "sa.json")
		require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o600))

		path := filepath.Join(dir, "config.hcl")
		body := "credentials_file = \"" + creds + "\"\nlog_level = \"debug\"\n"
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, creds, cfg.CredentialsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.hcl")
		require.NoError(t, os.WriteFile(path, []byte("log_level = \"warn\"\n"), 0o600))

		t.Setenv("GFORMS_LOG_LEVEL", "error")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("missing file path errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode config file")
	})
}

func TestValidate(t *testing.T) {
	t.Run("unknown log level", func(t *testing.T) {
		cfg := Default()
		cfg.LogLevel = "verbose"
		require.Error(t, cfg.Validate())
	})

	t.Run("missing credentials file", func(t *testing.T) {
		cfg := Default()
		cfg.CredentialsFile = filepath.Join(t.TempDir(), "nope.json")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "credentials_file")
	})

	t.Run("both problems reported together", func(t *testing.T) {
		cfg := &Config{
			LogLevel:        "loud",
			CredentialsFile: filepath.Join(t.TempDir(), "nope.json"),
		}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log_level")
		assert.Contains(t, err.Error(), "credentials_file")
	})
}
