package types

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserType is the userType assigned to every account created through admin signup.
const AdminUserType = "A"

// SignupRequest is the admin signup form.
type SignupRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=15"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Admin is an admin account as returned by the API. The password hash never leaves the db package.
type Admin struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse represents the login/signup response with admin data and authentication token.
type LoginResponse struct {
	Admin *Admin `json:"admin"`
	Token string `json:"token"`
}

// DraftRequest asks the generator to turn pasted text into a job draft.
type DraftRequest struct {
	JobData         string `json:"jobData" validate:"required"`
	JobCategoryType string `json:"jobCategoryType" validate:"required,oneof=Private Government"`
}
