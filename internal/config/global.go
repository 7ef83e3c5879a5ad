package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// UserConfigDir is the directory name under XDG_CONFIG_HOME.
	UserConfigDir = "tracelint"
	// UserConfigFile is the config file name.
	UserConfigFile = "config.yml"
)

// UserConfigPath returns the path to the user config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/tracelint/config.yml.
func UserConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, UserConfigDir, UserConfigFile)
}

// LoadUserConfig loads the user config file. It holds defaults shared by all
// projects, typically fail_on, log_level and dangling_exempt.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	path := UserConfigPath()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading user config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing user config: %w", err)
	}

	// Relative paths in the user config have no project to anchor to.
	cfg.Needs = ExpandPath(cfg.Needs)
	cfg.Policies = ExpandPath(cfg.Policies)
	return &cfg, nil
}
