package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KlemensE/roslyn/internal/config"
	"github.com/KlemensE/roslyn/internal/logging"
	"github.com/KlemensE/roslyn/internal/version"
)

var (
	// rootFlag is the CLI --root flag value (workspace root)
	rootFlag string
)

var rootCmd = &cobra.Command{
	Use:   "navwire",
	Short: "navwire - navigation result transfer tooling",
	Long: `navwire inspects and verifies dehydrated navigation results: the flat,
transport-safe records an out-of-process analysis host hands back to the
process that owns the project model. It can rehydrate result batches
against a document snapshot and manage the local document store.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("navwire version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", ".",
		"Workspace root containing .navwire/")
}

// mustLoadConfig loads the workspace config or exits.
func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig(rootFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds a logger from config, optionally overridden by a
// per-command format flag.
func newLogger(cfg *config.Config, formatOverride string) *logging.Logger {
	format := cfg.Logging.Format
	if formatOverride != "" {
		format = formatOverride
	}
	return logging.New(logging.Config{
		Format: logging.Format(format),
		Level:  logging.Level(cfg.Logging.Level),
	})
}
