package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jonathan/job-board/internal/llm"
	"github.com/jonathan/job-board/internal/schemas"
	"github.com/jonathan/job-board/internal/types"
)

// Result is a generated job draft ready for form pre-fill.
type Result struct {
	// Category is the variant the draft routes to.
	Category types.Category `json:"category"`
	// Draft is the object exactly as extracted from the generated text.
	Draft Draft `json:"draft"`
	// Job is the draft decoded into its typed record. Nil when the draft does not fit the shape.
	Job types.Job `json:"job,omitempty"`
	// Issues lists schema problems the admin should fix before saving.
	Issues []schemas.FieldError `json:"issues"`
}

// Generator drafts structured job records from pasted announcements.
type Generator struct {
	client llm.Client
	logger *slog.Logger
}

// NewGenerator creates a Generator backed by client.
func NewGenerator(client llm.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{client: client, logger: logger}
}

// Generate asks the model to structure jobData as a record of the requested category,
// extracts the returned object and reports (without enforcing) schema issues.
func (g *Generator) Generate(ctx context.Context, jobData string, category types.Category) (*Result, error) {
	if strings.TrimSpace(jobData) == "" {
		return nil, &ValidationError{Field: "jobData", Message: "job data is required"}
	}

	var schema llm.ExtractionSchema
	switch category {
	case types.CategoryPrivate:
		schema = llm.PrivateJobSchema()
	case types.CategoryGovernment:
		schema = llm.GovernmentJobSchema()
	default:
		return nil, &ValidationError{Field: "jobCategoryType", Message: fmt.Sprintf("unknown job category %q", category)}
	}

	prompt := llm.BuildJobPrompt(schema, string(category), NormalizeJobData(jobData))

	text, err := g.client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate job draft", Cause: err}
	}

	draft, err := ExtractJobObject(text)
	if err != nil {
		g.logger.Warn("generated text has no usable job object",
			slog.String("category", string(category)),
			slog.Int("response_length", len(text)),
			slog.Any("error", err))
		return nil, err
	}

	result := &Result{
		Category: draft.Category(),
		Draft:    draft,
		Issues:   []schemas.FieldError{},
	}

	if result.Category != category {
		result.Issues = append(result.Issues, schemas.FieldError{
			Field:   "jobCategory",
			Message: fmt.Sprintf("requested %s but the draft reads as %s", category, result.Category),
		})
	}

	job, err := draft.ToJob()
	if err != nil {
		result.Issues = append(result.Issues, schemas.FieldError{Field: "(root)", Message: err.Error()})
	} else {
		result.Job = job
	}

	issues, err := schemas.CheckDraft(result.Category, draft)
	if err != nil {
		return nil, fmt.Errorf("failed to check draft: %w", err)
	}
	result.Issues = append(result.Issues, issues...)

	g.logger.Info("job draft generated",
		slog.String("category", string(result.Category)),
		slog.Int("issues", len(result.Issues)))

	return result, nil
}
