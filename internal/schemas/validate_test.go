package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/job-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(issues []FieldError) []string {
	names := make([]string, 0, len(issues))
	for _, issue := range issues {
		names = append(names, issue.Field)
	}
	return names
}

func TestJobSchema_EmbeddedDocuments(t *testing.T) {
	for _, category := range []types.Category{types.CategoryPrivate, types.CategoryGovernment} {
		t.Run(string(category), func(t *testing.T) {
			content, err := JobSchema(category)
			require.NoError(t, err)

			var doc map[string]any
			require.NoError(t, json.Unmarshal([]byte(content), &doc))
			assert.Equal(t, "object", doc["type"])
		})
	}

	_, err := JobSchema("Freelance")
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCheckDraft_CleanPrivateDraft(t *testing.T) {
	draft := map[string]any{
		"jobTitle":           "Backend Engineer",
		"jobType":            "Full-time",
		"education":          "B.Tech",
		"informationLink":    "https://acme.example/jobs/1",
		"companyName":        "Acme",
		"jobLocation":        []any{"pune"},
		"jobCategory":        "Private",
		"applicationEndDate": "2025-01-31",
	}

	issues, err := CheckDraft(types.CategoryPrivate, draft)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckDraft_ReportsMissingAndWrongFields(t *testing.T) {
	draft := map[string]any{
		"jobTitle":        "Clerk",
		"jobType":         "",
		"education":       "12th pass",
		"informationLink": "https://ssc.example/notice",
		"vacancyCount":    0,
		"ageLimit":        "18-27",
		"examDate":        "next month",
	}

	issues, err := CheckDraft(types.CategoryGovernment, draft)
	require.NoError(t, err)

	names := fieldNames(issues)
	assert.Contains(t, names, "jobType", "blank strings count as missing")
	assert.Contains(t, names, "nameOfDepartment")
	assert.Contains(t, names, "governmentType")
	assert.Contains(t, names, "vacancyCount")
	assert.Contains(t, names, "examDate")
}

func TestCheckDraft_CategoryMismatchIsAnIssue(t *testing.T) {
	draft := map[string]any{
		"jobTitle":        "Backend Engineer",
		"jobType":         "Full-time",
		"education":       "B.Tech",
		"informationLink": "https://acme.example/jobs/1",
		"companyName":     "Acme",
		"jobLocation":     []any{"pune"},
		"jobCategory":     "Government",
	}

	issues, err := CheckDraft(types.CategoryPrivate, draft)
	require.NoError(t, err)
	assert.Equal(t, []string{"jobCategory"}, fieldNames(issues))
}

func TestCheckDraft_AcceptsTypedJobs(t *testing.T) {
	job := types.NewGovernmentJob()
	job.JobTitle = "Clerk"
	job.JobType = "Permanent"
	job.Education = "12th pass"
	job.InformationLink = "https://ssc.example/notice"
	job.NameOfDepartment = "SSC"
	job.VacancyCount = 120
	job.AgeLimit = "18-27"
	job.GovernmentType = "Central"

	issues, err := CheckDraft(types.CategoryGovernment, job)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestCheckDraft_UnknownCategory(t *testing.T) {
	_, err := CheckDraft("Freelance", map[string]any{})
	assert.Error(t, err)
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "name", validationErr.Errors[0].Field)
}

func TestValidateJSONString_MalformedSchema(t *testing.T) {
	err := ValidateJSONString(`{not json`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}
