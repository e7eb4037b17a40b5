package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/fetch"
	"github.com/jonathan/job-board/internal/llm"
	"github.com/jonathan/job-board/internal/observability"
	"github.com/jonathan/job-board/internal/types"
	"github.com/spf13/cobra"
)

var (
	extractCategory string
	extractFile     string
	extractURL      string
	extractOutput   string
	extractAPIKey   string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Draft a structured job record from an announcement",
	Long: `Send a pasted job announcement (plain text or HTML) to Gemini and print the
drafted record together with any schema issues. Nothing is stored.

With --url the announcement page is downloaded first and its readable text is used.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractCategory, "category", "c", "", "Job category: Private or Government (required)")
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "-", "Announcement file, or - for stdin")
	extractCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Fetch the announcement from this URL instead of --file")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Write the draft JSON to this file instead of stdout")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")

	_ = extractCmd.MarkFlagRequired("category")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	category, err := types.ParseCategory(extractCategory)
	if err != nil {
		return err
	}

	var jobData string
	if extractURL != "" {
		jobData, err = fetchAnnouncement(cmd.Context(), extractURL)
	} else {
		jobData, err = readInput(cmd.InOrStdin(), extractFile)
	}
	if err != nil {
		return err
	}

	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = appConfig.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	ctx := cmd.Context()
	client, err := llm.NewClient(ctx, llmConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	result, err := extraction.NewGenerator(client, logger).Generate(ctx, jobData, category)
	if err != nil {
		return err
	}

	if verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintJob(result.Job)
		printer.PrintIssues(result.Issues)
	} else {
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s: %s\n", issue.Field, issue.Message)
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	if extractOutput == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return err
	}
	if err := os.WriteFile(extractOutput, append(out, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Draft written to %s\n", extractOutput)
	return nil
}

// readInput reads path, or stdin when path is "-" or empty.
func readInput(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// fetchAnnouncement downloads a published announcement and reduces HTML pages to text.
func fetchAnnouncement(ctx context.Context, rawURL string) (string, error) {
	result, err := fetch.URL(ctx, rawURL, nil)
	if err != nil {
		return "", err
	}
	logger.Info("fetched announcement", "url", rawURL, "bytes", len(result.Body), "content_type", result.ContentType)

	if !result.IsHTML() {
		return result.Body, nil
	}
	text, err := extraction.HTMLToText(result.Body)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", fmt.Errorf("no readable text found at %s", rawURL)
	}
	return text, nil
}
