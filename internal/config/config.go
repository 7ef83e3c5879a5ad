// Package config handles project and user configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tracelint/tracelint/internal/graph"
	"github.com/tracelint/tracelint/internal/issue"
	"github.com/tracelint/tracelint/internal/node"
)

// Config holds the settings a run resolves before reading any input.
type Config struct {
	Needs          string   `yaml:"needs,omitempty"`    // dataset path
	Policies       string   `yaml:"policies,omitempty"` // policy document path
	Version        string   `yaml:"version,omitempty"`  // dataset version; empty means current
	DanglingExempt []string `yaml:"dangling_exempt,omitempty"`
	StrictRules    *bool    `yaml:"strict_rules,omitempty"` // nil means unset
	FailOn         string   `yaml:"fail_on,omitempty"`
	LogLevel       string   `yaml:"log_level,omitempty"`

	// Root is the directory of the project file, empty when none was found.
	Root string `yaml:"-"`
}

const (
	ProjectFile = "tracelint.yml"
	DotEnvFile  = ".env"

	DefaultNeeds    = "needs.json"
	DefaultPolicies = "policies.yml"
	DefaultFailOn   = "error"
	DefaultLogLevel = "info"
)

var (
	// ErrNoProject is returned when no project file exists in a directory or its parents.
	ErrNoProject = errors.New("no " + ProjectFile + " found")

	// ErrInvalid is returned for configuration values that cannot be used.
	ErrInvalid = errors.New("invalid config")
)

// ValidLogLevels lists the accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Needs:    DefaultNeeds,
		Policies: DefaultPolicies,
		FailOn:   DefaultFailOn,
		LogLevel: DefaultLogLevel,
	}
}

// ProjectPath returns the path to tracelint.yml under root.
func ProjectPath(root string) string {
	return filepath.Join(root, ProjectFile)
}

// IsProject checks if the given directory contains a project file.
func IsProject(dir string) bool {
	info, err := os.Stat(ProjectPath(dir))
	return err == nil && !info.IsDir()
}

// FindProject walks up from start to the nearest directory holding a project file.
func FindProject(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsProject(abs) {
			return abs, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrNoProject
		}
		abs = parent
	}
}

// Load reads a project file. Relative dataset and policy paths are resolved
// against the file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.Root = filepath.Dir(path)
	cfg.Needs = resolvePath(cfg.Root, cfg.Needs)
	cfg.Policies = resolvePath(cfg.Root, cfg.Policies)
	return &cfg, nil
}

// Resolve builds the effective configuration for a run started in dir:
// built-in defaults, then the user config, then the nearest project file,
// then environment overrides from lookup. Flags are applied by the caller.
func Resolve(dir string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	user, err := LoadUserConfig()
	if err != nil {
		return nil, err
	}
	cfg.merge(user)

	root, err := FindProject(dir)
	switch {
	case errors.Is(err, ErrNoProject):
		slog.Debug("no project file", slog.String("component", "config"), slog.String("dir", dir))
	case err != nil:
		return nil, err
	default:
		project, err := Load(ProjectPath(root))
		if err != nil {
			return nil, err
		}
		cfg.merge(project)
		cfg.Root = root
		cfg.Needs = resolvePath(root, cfg.Needs)
		cfg.Policies = resolvePath(root, cfg.Policies)
	}

	if lookup != nil {
		cfg.ApplyEnv(lookup)
	}
	return cfg, nil
}

// merge overlays the non-zero settings of o onto c.
func (c *Config) merge(o *Config) {
	if o == nil {
		return
	}
	if o.Needs != "" {
		c.Needs = o.Needs
	}
	if o.Policies != "" {
		c.Policies = o.Policies
	}
	if o.Version != "" {
		c.Version = o.Version
	}
	if o.DanglingExempt != nil {
		c.DanglingExempt = o.DanglingExempt
	}
	if o.StrictRules != nil {
		strict := *o.StrictRules
		c.StrictRules = &strict
	}
	if o.FailOn != "" {
		c.FailOn = o.FailOn
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Strict reports whether unknown policy rules fail evaluation.
func (c *Config) Strict() bool {
	return c.StrictRules != nil && *c.StrictRules
}

// Validate checks kinds, fail_on and log_level.
func (c *Config) Validate() error {
	for _, raw := range c.DanglingExempt {
		if _, err := parseKindStrict(raw); err != nil {
			return err
		}
	}
	if _, err := c.FailOnSeverity(); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// FailOnSeverity returns the lowest severity that fails a check run.
func (c *Config) FailOnSeverity() (issue.Severity, error) {
	raw := c.FailOn
	if raw == "" {
		raw = DefaultFailOn
	}
	sev, err := issue.ParseSeverity(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: fail_on: %v", ErrInvalid, err)
	}
	return sev, nil
}

// SlogLevel maps log_level onto a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log_level %q (valid: %v)", ErrInvalid, c.LogLevel, ValidLogLevels)
	}
}

// GraphOptions returns the graph construction options. An unset
// dangling_exempt keeps the graph defaults; an explicit empty list exempts nothing.
func (c *Config) GraphOptions() (graph.Options, error) {
	if c.DanglingExempt == nil {
		return graph.DefaultOptions(), nil
	}
	opts := graph.Options{DanglingExempt: make([]node.Kind, 0, len(c.DanglingExempt))}
	for _, raw := range c.DanglingExempt {
		k, err := parseKindStrict(raw)
		if err != nil {
			return graph.Options{}, err
		}
		opts.DanglingExempt = append(opts.DanglingExempt, k)
	}
	return opts, nil
}

// parseKindStrict is node.ParseKind without the unknown fallback.
func parseKindStrict(raw string) (node.Kind, error) {
	k := node.ParseKind(raw)
	if k == node.KindUnknown && !strings.EqualFold(strings.TrimSpace(raw), string(node.KindUnknown)) {
		return "", fmt.Errorf("%w: dangling_exempt: unknown kind %q", ErrInvalid, raw)
	}
	return k, nil
}

func resolvePath(root, path string) string {
	if path == "" {
		return ""
	}
	path = ExpandPath(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
