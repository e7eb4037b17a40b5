package server

import (
	"context"
	"testing"

	"github.com/jonathan/job-board/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_SignupHashesPassword(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, testPasswordConfig())

	admin, err := svc.Signup(context.Background(), &types.SignupRequest{
		Email:           "  ops@example.com ",
		Password:        "Adm1n#pw",
		ConfirmPassword: "Adm1n#pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", admin.Email)
	assert.Equal(t, types.AdminUserType, admin.UserType)

	account := store.admins["ops@example.com"]
	require.NotNil(t, account)
	assert.NotEqual(t, "Adm1n#pw", account.PasswordHash)
	assert.True(t, testPasswordConfig().VerifyPassword("Adm1n#pw", account.PasswordHash))
}

func TestAdminService_SignupPolicy(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		confirm   string
		wantField string
	}{
		{name: "mismatch", password: "Adm1n#pw", confirm: "Adm1n#px", wantField: "confirmPassword"},
		{name: "too long", password: "Adm1n#pw-much-too-long", confirm: "Adm1n#pw-much-too-long", wantField: "password"},
		{name: "no uppercase", password: "adm1n#pw", confirm: "adm1n#pw", wantField: "password"},
		{name: "no digit", password: "Admin#pw", confirm: "Admin#pw", wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(newFakeStore(), testPasswordConfig())
			_, err := svc.Signup(context.Background(), &types.SignupRequest{
				Email: "ops@example.com", Password: tt.password, ConfirmPassword: tt.confirm,
			})

			var verr *ErrValidation
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestAdminService_Login(t *testing.T) {
	store := newFakeStore()
	svc := NewAdminService(store, testPasswordConfig())
	ctx := context.Background()

	created, err := svc.Signup(ctx, &types.SignupRequest{Email: "ops@example.com", Password: "Adm1n#pw", ConfirmPassword: "Adm1n#pw"})
	require.NoError(t, err)

	admin, err := svc.Login(ctx, &types.LoginRequest{Email: "OPS@example.com", Password: "Adm1n#pw"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "ops@example.com", Password: "adm1n#pw"})
	assert.IsType(t, &ErrInvalidCredentials{}, err)

	_, err = svc.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "Adm1n#pw"})
	assert.IsType(t, &ErrInvalidCredentials{}, err)
}
