// Package config loads server configuration from an optional HCL file
// and environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config is the server configuration.
type Config struct {
	// CredentialsFile is the path to a service account JSON key file.
	// When empty, Application Default Credentials are used.
	CredentialsFile string `hcl:"credentials_file,optional"`

	// LogLevel sets the hclog level (trace, debug, info, warn, error).
	LogLevel string `hcl:"log_level,optional"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads configuration from path (optional; empty means defaults
// only) and then applies environment overrides:
//
//	GFORMS_CREDENTIALS_FILE
//	GFORMS_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
			return nil, fmt.Errorf("decode config file %q: %w", path, err)
		}
		if cfg.LogLevel == "" {
			cfg.LogLevel = Default().LogLevel
		}
	}

	if v, ok := os.LookupEnv("GFORMS_CREDENTIALS_FILE"); ok {
		cfg.CredentialsFile = v
	}
	if v, ok := os.LookupEnv("GFORMS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration, reporting every problem found.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.LogLevel {
	case "trace", "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("invalid log_level %q", c.LogLevel))
	}

	if c.CredentialsFile != "" {
		if _, err := os.Stat(c.CredentialsFile); err != nil {
			result = multierror.Append(result, fmt.Errorf("credentials_file: %w", err))
		}
	}

	return result.ErrorOrNil()
}
