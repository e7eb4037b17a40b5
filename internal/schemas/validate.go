// Package schemas provides JSON Schema checks for generated job drafts.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jonathan/job-board/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed jobs/*.schema.json
var jobSchemaFS embed.FS

var schemaFiles = map[types.Category]string{
	types.CategoryPrivate:    "jobs/private_job.schema.json",
	types.CategoryGovernment: "jobs/government_job.schema.json",
}

var (
	compileOnce sync.Once
	compiled    map[types.Category]*gojsonschema.Schema
	compileErr  error
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// JobSchema returns the raw JSON Schema document for a job category.
func JobSchema(category types.Category) (string, error) {
	path, ok := schemaFiles[category]
	if !ok {
		return "", &SchemaLoadError{Path: string(category), Message: "no schema for category"}
	}
	data, err := jobSchemaFS.ReadFile(path)
	if err != nil {
		return "", &SchemaLoadError{Path: path, Message: "embedded schema missing", Cause: err}
	}
	return string(data), nil
}

func loadSchemas() (map[types.Category]*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[types.Category]*gojsonschema.Schema, len(schemaFiles))
		for category, path := range schemaFiles {
			content, err := JobSchema(category)
			if err != nil {
				compileErr = err
				return
			}
			schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(content))
			if err != nil {
				compileErr = &SchemaLoadError{Path: path, Message: "schema does not compile", Cause: err}
				return
			}
			compiled[category] = schema
		}
	})
	return compiled, compileErr
}

// CheckDraft reports the fields of draft that do not satisfy the schema of category.
// Nulls and blank strings count as missing. An empty slice means the draft is clean;
// an error means the check itself could not run.
func CheckDraft(category types.Category, draft any) ([]FieldError, error) {
	all, err := loadSchemas()
	if err != nil {
		return nil, err
	}
	schema, ok := all[category]
	if !ok {
		return nil, &SchemaLoadError{Path: string(category), Message: "no schema for category"}
	}

	doc, err := toDocument(draft)
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to validate draft: %w", err)
	}

	issues := collectErrors(result)
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return issues, nil
}

// toDocument round-trips draft through JSON and drops absent values.
func toDocument(draft any) (map[string]any, error) {
	data, err := json.Marshal(draft)
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("draft is not a JSON object: %w", err)
	}
	for k, v := range doc {
		switch val := v.(type) {
		case nil:
			delete(doc, k)
		case string:
			if strings.TrimSpace(val) == "" {
				delete(doc, k)
			}
		}
	}
	return doc, nil
}

func collectErrors(result *gojsonschema.Result) []FieldError {
	issues := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" || field == "" {
			if prop, ok := desc.Details()["property"].(string); ok && prop != "" {
				field = prop
			} else {
				field = "(root)"
			}
		}
		issues = append(issues, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return issues
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	return &ValidationError{Errors: collectErrors(result)}
}
