package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/job-board/internal/types"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	adminService *AdminService
	jwtService   *JWTService
	validator    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(adminService *AdminService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		jwtService:   jwtService,
		validator:    newValidator(),
	}
}

// Signup handles admin signup requests.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req types.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err).Error())
		return
	}

	admin, err := h.adminService.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusCreated, admin)
}

// Login handles admin login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, extractValidationErrors(err).Error())
		return
	}

	admin, err := h.adminService.Login(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, admin)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, admin *types.Admin) {
	token, err := h.jwtService.GenerateToken(admin.ID, admin.UserType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, status, types.LoginResponse{
		Admin: admin,
		Token: token,
	})
}

// newValidator returns a validator that reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// extractValidationErrors converts the first validator failure into an ErrValidation.
func extractValidationErrors(err error) *ErrValidation {
	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &ErrValidation{Field: fe.Field(), Message: describeTag(fe)}
	}
	return &ErrValidation{Message: "invalid request"}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "eqfield":
		return fmt.Sprintf("must match %s", lowerFirst(fe.Param()))
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fe.Tag()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
