package main

import (
	"fmt"

	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/llm"
	"github.com/jonathan/job-board/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the job board REST endpoints.
Draft generation is enabled when GEMINI_API_KEY is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	database, err := connectDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := database.Migrate(ctx); err != nil {
		return err
	}

	var generator server.DraftGenerator
	if appConfig.APIKey != "" {
		client, err := llm.NewClient(ctx, llmConfig(), appConfig.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
		generator = extraction.NewGenerator(client, logger)
	} else {
		logger.Warn("GEMINI_API_KEY not set; draft generation disabled")
	}

	port := appConfig.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:           port,
		RateLimitRPS:   appConfig.RateLimitRPS,
		RateLimitBurst: appConfig.RateLimitBurst,
		Logger:         logger,
	}, database, generator)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start(ctx)
}
