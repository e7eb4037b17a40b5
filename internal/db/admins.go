package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Admin Account Methods
// -----------------------------------------------------------------------------

// CheckEmailExists reports whether an admin account already uses email.
// Emails compare case-insensitively.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE lower(email) = lower($1))`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CreateAdmin stores a new admin account and returns its ID.
func (db *DB) CreateAdmin(ctx context.Context, email, passwordHash, userType string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO admins (email, password_hash, user_type)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		strings.TrimSpace(email), passwordHash, userType,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return id, nil
}

// GetAdminByEmail retrieves an admin account by email. Unknown emails return nil, nil.
func (db *DB) GetAdminByEmail(ctx context.Context, email string) (*AdminAccount, error) {
	if email == "" {
		return nil, nil
	}

	var account AdminAccount
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, user_type, created_at
		 FROM admins WHERE lower(email) = lower($1)`,
		strings.TrimSpace(email),
	).Scan(&account.ID, &account.Email, &account.PasswordHash, &account.UserType, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &account, nil
}

// DeleteAdmin removes an admin account.
func (db *DB) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
