// Package main provides the tracelint CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracelint/tracelint/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	verbose     bool

	flagNeeds    string
	flagPolicies string
	flagVersion  string

	// cfg is the effective configuration, resolved before any command runs.
	cfg *config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tracelint",
	Short: "Validate traceability graphs against policies",
	Long: `tracelint builds a directed traceability graph from a versioned needs
dataset (requirements, specs, tests, implementations, people, ...) and checks
it against declarative policy rules.

Settings come from flags, TRACELINT_* environment variables (a .env file in the
working directory is honored), the nearest tracelint.yml and the user config
at $XDG_CONFIG_HOME/tracelint/config.yml, in that order of precedence.

All commands output JSON by default; use --human for readable text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: resolveConfig,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&flagNeeds, "needs", "", "Needs dataset file (.json, .yml, optionally .zst)")
	rootCmd.PersistentFlags().StringVar(&flagPolicies, "policies", "", "Policy document file (.json, .yml, optionally .zst)")
	rootCmd.PersistentFlags().StringVar(&flagVersion, "dataset-version", "", "Dataset version to use (default: current_version)")
	rootCmd.Version = Version
}

// resolveConfig builds cfg from defaults, files, environment and flags, then
// installs the process logger.
func resolveConfig(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		exitWithError(ExitError, "getting current directory: %v", err)
	}

	if err := config.LoadDotEnv(cwd); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	resolved, err := config.Resolve(cwd, os.LookupEnv)
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("needs") {
		resolved.Needs = flagNeeds
	}
	if flags.Changed("policies") {
		resolved.Policies = flagPolicies
	}
	if flags.Changed("dataset-version") {
		resolved.Version = flagVersion
	}
	if verbose {
		resolved.LogLevel = "debug"
	}

	if err := resolved.Validate(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	level, _ := resolved.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	slog.Debug("config resolved",
		slog.String("component", "cli"),
		slog.String("root", resolved.Root),
		slog.String("needs", resolved.Needs),
		slog.String("policies", resolved.Policies),
		slog.String("version", resolved.Version))

	cfg = resolved
	return nil
}
