package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvNeeds    = "TRACELINT_NEEDS"
	EnvPolicies = "TRACELINT_POLICIES"
	EnvVersion  = "TRACELINT_VERSION"
	EnvLogLevel = "TRACELINT_LOG_LEVEL"
)

// LoadDotEnv loads dir/.env into the process environment. Variables that are
// already set win; a missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, DotEnvFile)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	slog.Debug("loaded env file", slog.String("component", "config"), slog.String("path", path))
	return nil
}

// ApplyEnv overrides settings from environment variables. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvNeeds, &c.Needs)
	set(EnvPolicies, &c.Policies)
	set(EnvVersion, &c.Version)
	set(EnvLogLevel, &c.LogLevel)
}
