package server

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonathan/job-board/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret-key-for-jwt-signing-minimum-32-bytes"

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          testJWTSecret,
		ExpirationHours: expirationHours,
		Issuer:          config.DefaultJWTIssuer,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken(uuid.New(), "A")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3, "JWT should have 3 parts separated by dots")
}

func TestJWTService_RoundTripsClaims(t *testing.T) {
	service := setupTestJWTService(t, 24)
	adminID := uuid.New()

	token, err := service.GenerateToken(adminID, "A")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, claims.AdminID)
	assert.Equal(t, "A", claims.UserType)
	assert.Equal(t, config.DefaultJWTIssuer, claims.Issuer)
	assert.Equal(t, adminID.String(), claims.Subject)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_ValidateToken_InvalidSignature(t *testing.T) {
	service1 := setupTestJWTService(t, 24)
	service2 := setupTestJWTService(t, 24)
	service2.config.Secret = "different-secret-key-for-jwt-signing-minimum-32-bytes"

	token, err := service1.GenerateToken(uuid.New(), "A")
	require.NoError(t, err)

	claims, err := service2.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "signature")
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := setupTestJWTService(t, 24)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "one part", token: "invalid"},
		{name: "two parts", token: "invalid.token"},
		{name: "four parts", token: "invalid.token.format.extra"},
		{name: "invalid base64", token: "invalid.base64.signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_TokenExpiration(t *testing.T) {
	service := setupTestJWTService(t, 1)
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }

	token, err := service.GenerateToken(uuid.New(), "A")
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(30 * time.Minute) }
	_, err = service.ValidateToken(token)
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = service.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestJWTService_RejectsWrongIssuer(t *testing.T) {
	service := setupTestJWTService(t, 24)

	other := setupTestJWTService(t, 24)
	other.config.Issuer = "someone-else"
	token, err := other.GenerateToken(uuid.New(), "A")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	service := setupTestJWTService(t, 24)

	claims := &Claims{
		AdminID:  uuid.New(),
		UserType: "A",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.DefaultJWTIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMissingAdminID(t *testing.T) {
	service := setupTestJWTService(t, 24)

	token, err := service.GenerateToken(uuid.Nil, "A")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	adminID := uuid.New()

	token, err := service.GenerateToken(adminID, "A")
	require.NoError(t, err)

	principal, err := service.AsTokenValidator().ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, adminID, principal.GetAdminID())
	assert.Equal(t, "A", principal.GetUserType())
}
