package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/job-board/internal/config"
	"github.com/jonathan/job-board/internal/db"
	"github.com/jonathan/job-board/internal/types"
)

// AdminStore is the persistence the admin service needs. *db.DB satisfies it.
type AdminStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateAdmin(ctx context.Context, email, passwordHash, userType string) (uuid.UUID, error)
	GetAdminByEmail(ctx context.Context, email string) (*db.AdminAccount, error)
}

// AdminService provides business logic for admin signup and login.
type AdminService struct {
	db             AdminStore
	passwordConfig *config.PasswordConfig
}

// NewAdminService creates a new AdminService with the given dependencies
func NewAdminService(store AdminStore, passwordConfig *config.PasswordConfig) *AdminService {
	return &AdminService{
		db:             store,
		passwordConfig: passwordConfig,
	}
}

// Signup creates a new admin account. The password must satisfy the password
// policy and match its confirmation.
func (s *AdminService) Signup(ctx context.Context, req *types.SignupRequest) (*types.Admin, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, &ErrValidation{Field: "email", Message: "email is required"}
	}
	if req.Password != req.ConfirmPassword {
		return nil, &ErrValidation{Field: "confirmPassword", Message: "passwords do not match"}
	}
	if err := config.CheckPasswordPolicy(req.Password); err != nil {
		return nil, &ErrValidation{Field: "password", Message: err.Error()}
	}

	exists, err := s.db.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.db.CreateAdmin(ctx, email, passwordHash, types.AdminUserType); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	account, err := s.db.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created admin: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("created admin not found: %s", email)
	}

	admin := account.Admin
	return &admin, nil
}

// Login authenticates an admin and returns the account without its hash.
func (s *AdminService) Login(ctx context.Context, req *types.LoginRequest) (*types.Admin, error) {
	account, err := s.db.GetAdminByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	// Unknown emails and wrong passwords are indistinguishable to the caller.
	if account == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, account.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	admin := account.Admin
	return &admin, nil
}
