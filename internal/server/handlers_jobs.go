package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/job-board/internal/types"
)

// ---------------------------------------------------------------------
// Private Job Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListPrivateJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobService.ListPrivate(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleCreatePrivateJob(w http.ResponseWriter, r *http.Request) {
	job := types.NewPrivateJob()
	if err := json.NewDecoder(r.Body).Decode(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.jobService.CreatePrivate(r.Context(), job)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteAllPrivateJobs(w http.ResponseWriter, r *http.Request) {
	n, err := s.jobService.DeleteAllPrivate(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleGetPrivateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job, err := s.jobService.GetPrivate(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleUpdatePrivateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job := types.NewPrivateJob()
	if err := json.NewDecoder(r.Body).Decode(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.jobService.UpdatePrivate(r.Context(), id, job)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeletePrivateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	if err := s.jobService.DeletePrivate(r.Context(), id); err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Government Job Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListGovernmentJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobService.ListGovernment(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleCreateGovernmentJob(w http.ResponseWriter, r *http.Request) {
	job := types.NewGovernmentJob()
	if err := json.NewDecoder(r.Body).Decode(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := s.jobService.CreateGovernment(r.Context(), job)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteAllGovernmentJobs(w http.ResponseWriter, r *http.Request) {
	n, err := s.jobService.DeleteAllGovernment(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (s *Server) handleGetGovernmentJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job, err := s.jobService.GetGovernment(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleUpdateGovernmentJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job := types.NewGovernmentJob()
	if err := json.NewDecoder(r.Body).Decode(job); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := s.jobService.UpdateGovernment(r.Context(), id, job)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteGovernmentJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	if err := s.jobService.DeleteGovernment(r.Context(), id); err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ---------------------------------------------------------------------
// Cross-category Handlers
// ---------------------------------------------------------------------

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.jobID(w, r)
	if !ok {
		return
	}

	job, err := s.jobService.GetJob(r.Context(), id)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

func (s *Server) handleSearchJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	jobs, err := s.jobService.Search(r.Context(), query.Get("q"), query.Get("location"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

func (s *Server) handleITJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobService.IT(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// jobID reads the {id} path value. Malformed IDs are answered with 400.
func (s *Server) jobID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return "", false
	}
	return id, true
}
