package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel errors for the admin/auth persistence layer.
var (
	ErrAdminNotFound   = errors.New("admin user not found")
	ErrSessionNotFound = errors.New("admin session not found")
)

// AdminRepository defines persistence operations for admin accounts.
type AdminRepository interface {
	// FindByEmail retrieves an admin account by email address.
	FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error)

	// FindByID retrieves an admin account by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error)

	// FindByResetToken retrieves the admin holding a pending reset token.
	FindByResetToken(ctx context.Context, token string) (*entity.AdminUser, error)

	// Update persists changes to an admin account (password hash, reset token).
	Update(ctx context.Context, admin *entity.AdminUser) error
}

// SessionRepository defines persistence operations for admin sessions.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.AdminSession) error

	// FindByTokenHash retrieves a session by the hash of its refresh token.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error)

	// DeleteByTokenHash removes a single session (logout).
	DeleteByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteByAdminID removes every session of one admin.
	DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error
}
