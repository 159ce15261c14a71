// Package cmd provides the skillgraph command-line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adalundhe/skillgraph/core/config"
	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

var (
	flagConfig   string
	flagTaxonomy string
)

// cfg is the loaded configuration, populated before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "skillgraph",
	Short: "Skillgraph - a skills taxonomy knowledge base",
	Long: `Skillgraph is a knowledge base of professional skills: normalize skill
names and aliases, score cross-skill transferability, analyze gaps between
job requirements and candidate skills, and plan learning paths.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		if flagTaxonomy != "" {
			cfg.TaxonomyPath = flagTaxonomy
		}
		configureLogging(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&flagTaxonomy, "taxonomy", "t", "", "Path to taxonomy document (overrides config)")
}

func configureLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	slog.SetDefault(slog.New(handler))
}

// loadStore builds the store once for the invoked command. Subcommands share
// the snapshot; nothing reconstructs the store per operation.
func loadStore() (*taxonomy.Store, error) {
	store, err := taxonomy.Load(cfg.TaxonomyPath)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy from %s: %w", cfg.TaxonomyPath, err)
	}
	slog.Debug("taxonomy loaded", "path", cfg.TaxonomyPath, "skills", store.Len())
	return store, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
