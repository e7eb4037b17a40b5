// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

const (
	adminIDKey  ContextKey = "adminID"
	userTypeKey ContextKey = "userType"
)

// TokenValidator is an interface for validating JWT tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (Principal, error)
}

// Principal is the identity carried by a validated token.
type Principal interface {
	GetAdminID() uuid.UUID
	GetUserType() string
}

// AuthMiddleware creates middleware that validates Bearer tokens and adds the
// admin identity to the request context. When userTypes is non-empty the
// token's user type must be one of them.
func AuthMiddleware(validator TokenValidator, userTypes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			principal, err := validator.ValidateToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if len(userTypes) > 0 && !allowed(principal.GetUserType(), userTypes) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, principal.GetAdminID())
			ctx = context.WithValue(ctx, userTypeKey, principal.GetUserType())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken reads the token from an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func allowed(userType string, userTypes []string) bool {
	for _, t := range userTypes {
		if t == userType {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// GetAdminID extracts the authenticated admin ID from the request context.
func GetAdminID(r *http.Request) (uuid.UUID, error) {
	adminID, ok := r.Context().Value(adminIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("admin ID not found in request context")
	}
	return adminID, nil
}

// GetUserType extracts the authenticated user type from the request context.
func GetUserType(r *http.Request) string {
	userType, _ := r.Context().Value(userTypeKey).(string)
	return userType
}

// AdminIDKey returns the context key for the admin ID (for testing purposes).
func AdminIDKey() ContextKey {
	return adminIDKey
}
