// Package cmd wires the generator's command-line surface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "coingen/internal/config"
	"coingen/internal/pipeline"
)

var (
	// Global flags (applied over config after load)
	flagDebug     bool
	flagSourceURL string
	flagOverrides string

	// Loaded configuration
	cfg *cfgpkg.Config
)

var rootCmd = &cobra.Command{
	Use:   "coingen",
	Short: "Generate the SLIP-0044 coin table as Go source",
	Long: `coingen fetches the SLIP-0044 registry of coin types, normalizes and
deduplicates its entries, and emits them as a generated Go lookup table.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(initialize)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagSourceURL, "source-url", "", "registry document URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagOverrides, "overrides", "", "YAML file with extra irregular-name overrides")
}

func initialize() {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	c, err := cfgpkg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("source-url") && flagSourceURL != "" {
		cfg.SourceURL = flagSourceURL
	}
	if f.Changed("overrides") {
		cfg.OverridesPath = flagOverrides
	}
}

// pipelineOptions builds pipeline options from the loaded configuration,
// reading the extra-overrides file when one is configured.
func pipelineOptions() (pipeline.Options, error) {
	var opts pipeline.Options
	if cfg.OverridesPath != "" {
		extra, err := pipeline.LoadOverrides(cfg.OverridesPath)
		if err != nil {
			return opts, err
		}
		opts.ExtraOverrides = extra
	}
	return opts, nil
}
