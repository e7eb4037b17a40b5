package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/types"
)

// DraftGenerator turns pasted announcement text into a job draft.
// *extraction.Generator satisfies it.
type DraftGenerator interface {
	Generate(ctx context.Context, jobData string, category types.Category) (*extraction.Result, error)
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	if s.generator == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Draft generation is not configured")
		return
	}

	var req types.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err).Error())
		return
	}

	category, err := types.ParseCategory(req.JobCategoryType)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.generator.Generate(r.Context(), req.JobData, category)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}
