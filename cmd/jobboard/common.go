package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/llm"
)

// connectDB opens the database named by the effective configuration.
func connectDB(ctx context.Context) (*db.DB, error) {
	if appConfig.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, appConfig.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// llmConfig returns the model configuration, honoring GEMINI_MODEL.
func llmConfig() *llm.Config {
	cfg := llm.DefaultConfig()
	if appConfig.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, appConfig.Model)
	}
	return cfg
}
