// Package main provides the entry point for the job board API server and its admin tools.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/job-board/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	verbose    bool

	appConfig *config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Job Board HTTP API Server",
	Long:  "Job Board publishes private and government job postings, searches them, and drafts new postings from pasted announcements.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return loadConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file (overrides environment)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print formatted job details")
}

// loadConfig resolves the effective configuration and installs the default logger.
func loadConfig() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	appConfig = cfg
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
