package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthUsecase defines the authentication operations of the admin panel.
type AuthUsecase interface {
	// Login verifies credentials and opens a session. Repeated failures
	// for the same account trigger a temporary cooldown.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Logout closes the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh exchanges a valid refresh token for a new token pair and
	// rotates the session row.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// ValidateAccess verifies an access token and returns the admin id.
	ValidateAccess(ctx context.Context, accessToken string) (uuid.UUID, error)

	// ForgotPassword issues a reset token and delivers the reset link.
	// The outcome is identical whether or not the email exists.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword consumes a pending reset token and sets the new
	// password, closing every open session of the account.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}

// --- Input/Output DTOs ---

// LoginInput defines the credentials for a login attempt.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued token pair.
type LoginOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// ForgotPasswordInput defines the data required to start a password reset.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput defines the data required to finish a password reset.
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
