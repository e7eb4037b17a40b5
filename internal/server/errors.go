// Package server provides the HTTP REST API for the job board.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/job-board/internal/extraction"
	"github.com/jonathan/job-board/internal/types"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrJobExists indicates a job with the same identifying fields is already stored.
type ErrJobExists struct {
	Category types.Category
	ID       string
}

func (e *ErrJobExists) Error() string {
	return fmt.Sprintf("%s job already exists: %s", e.Category, e.ID)
}

// ErrJobNotFound indicates no job has the requested ID.
type ErrJobNotFound struct {
	ID string
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Wrapped errors are matched by their innermost known type.
func HTTPStatus(err error) int {
	var (
		emailExists  *ErrEmailAlreadyExists
		badCreds     *ErrInvalidCredentials
		jobExists    *ErrJobExists
		jobNotFound  *ErrJobNotFound
		validation   *ErrValidation
		draftInput   *extraction.ValidationError
		apiCall      *extraction.APICallError
		malformedRaw *extraction.MalformedJSONError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &emailExists), errors.As(err, &jobExists):
		return http.StatusConflict
	case errors.As(err, &badCreds):
		return http.StatusUnauthorized
	case errors.As(err, &jobNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &draftInput):
		return http.StatusBadRequest
	case errors.As(err, &apiCall):
		return http.StatusBadGateway
	case errors.Is(err, extraction.ErrNoJSONFound), errors.As(err, &malformedRaw):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
