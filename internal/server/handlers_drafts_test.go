package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/schemas"
	"github.com/jonathan/job-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDraft_Success(t *testing.T) {
	job := types.NewGovernmentJob()
	job.JobTitle = "Junior Engineer"
	gen := &fakeGenerator{result: &extraction.Result{
		Category: types.CategoryGovernment,
		Draft:    extraction.Draft{"jobTitle": "Junior Engineer", "jobCategory": "Government"},
		Job:      job,
		Issues:   []schemas.FieldError{{Field: "nameOfDepartment", Message: "nameOfDepartment is required"}},
	}}
	s := newTestServer(t, newFakeStore(), gen)

	w := postJSON(t, s.Handler(), "/drafts", types.DraftRequest{
		JobData:         "PWD invites applications for Junior Engineer posts",
		JobCategoryType: "Government",
	}, adminToken(t, s))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, types.CategoryGovernment, gen.category)
	assert.Equal(t, "PWD invites applications for Junior Engineer posts", gen.jobData)

	var resp struct {
		Category string               `json:"category"`
		Draft    map[string]any       `json:"draft"`
		Job      map[string]any       `json:"job"`
		Issues   []schemas.FieldError `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Government", resp.Category)
	assert.Equal(t, "Junior Engineer", resp.Draft["jobTitle"])
	assert.Equal(t, "Junior Engineer", resp.Job["jobTitle"])
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "nameOfDepartment", resp.Issues[0].Field)
}

func TestCreateDraft_RequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "invalid body", body: "["},
		{name: "missing job data", body: types.DraftRequest{JobCategoryType: "Private"}},
		{name: "unknown category", body: types.DraftRequest{JobData: "text", JobCategoryType: "Freelance"}},
		{name: "category is case-sensitive", body: types.DraftRequest{JobData: "text", JobCategoryType: "private"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			s := newTestServer(t, newFakeStore(), gen)

			w := postJSON(t, s.Handler(), "/drafts", tt.body, adminToken(t, s))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Zero(t, gen.calls)
		})
	}
}

func TestCreateDraft_GeneratorErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "model failure",
			err:        &extraction.APICallError{Message: "failed to generate job draft", Cause: errors.New("quota")},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "no object in reply",
			err:        extraction.ErrNoJSONFound,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "malformed object in reply",
			err:        &extraction.MalformedJSONError{Span: "{a:1}", Cause: errors.New("invalid character")},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "blank job data",
			err:        &extraction.ValidationError{Field: "jobData", Message: "job data is required"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, newFakeStore(), &fakeGenerator{err: tt.err})

			w := postJSON(t, s.Handler(), "/drafts", types.DraftRequest{JobData: "text", JobCategoryType: "Private"}, adminToken(t, s))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NotEmpty(t, errorMessage(t, w))
		})
	}
}

func TestCreateDraft_NotConfigured(t *testing.T) {
	s := newTestServer(t, newFakeStore(), nil)

	w := postJSON(t, s.Handler(), "/drafts", types.DraftRequest{JobData: "text", JobCategoryType: "Private"}, adminToken(t, s))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
