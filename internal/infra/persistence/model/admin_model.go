package model

import (
	"time"

	"github.com/google/uuid"
)

// AdminUserModel mirrors the 'admin_users' table.
type AdminUserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email               string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash        string    `gorm:"type:varchar(255);not null"`
	ResetToken          string    `gorm:"type:varchar(255);index"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// AdminSessionModel mirrors the 'admin_sessions' table. Rows are keyed by
// the hash of the refresh token, never the raw token.
type AdminSessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminSessionModel) TableName() string {
	return "admin_sessions"
}
