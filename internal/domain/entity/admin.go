package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an account allowed into the content admin panel.
type AdminUser struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	ResetToken          string    // Non-empty while a password reset is pending.
	ResetTokenExpiresAt time.Time // Zero when no reset is pending.
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// AdminSession is one logged-in admin session, keyed by the hash of its
// refresh token. Rows are deleted on logout and ignored after ExpiresAt.
type AdminSession struct {
	ID        uuid.UUID
	AdminID   uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
