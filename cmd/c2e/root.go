package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"c2e-dev/c2e/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "c2e",
	Short: "c2e - codec to encoder generator",
	Long: `c2e compiles declarative per-character transcoding rule sets (codecs)
and renders them into source code for many output languages.

A codec document names an output TARGET and an ordered list of RULES.
Each rule pairs a guard (a character, a U+HHHH escape, or a range) with
an emitter (a literal string, a builtin like HEX, or a user-defined
emitter list). Rules apply first-match-wins; DEFAULT-EMITTER covers
everything no guard matches.

Language packs under the template directory supply the per-language
templates that turn compiled codecs into source files.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "c2e.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the tool configuration, tolerating a missing file when
// the default path is used.
func loadConfig() (*config.Config, error) {
	return config.LoadConfigIfPresent(cfgFile)
}

// setupLogger configures the process logger from config and the verbose
// flag.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
