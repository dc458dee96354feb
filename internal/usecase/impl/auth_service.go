package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/infra/auth"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultResetTokenTTL bounds how long a password-reset link stays valid.
const DefaultResetTokenTTL = time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	tokenSvc    service.TokenService
	resetSender service.ResetLinkSender
	throttle    *auth.LoginThrottle
	logger      *slog.Logger

	resetBaseURL  string
	resetTokenTTL time.Duration
	now           func() time.Time
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	txManager repository.TransactionManager,
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	resetSender service.ResetLinkSender,
	throttle *auth.LoginThrottle,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.AuthUsecase {
	resetTokenTTL := cfg.Auth.ResetTokenTTL
	if resetTokenTTL <= 0 {
		resetTokenTTL = DefaultResetTokenTTL
	}

	return &authService{
		txManager:     txManager,
		adminRepo:     adminRepo,
		sessionRepo:   sessionRepo,
		hasher:        hasher,
		tokenSvc:      tokenSvc,
		resetSender:   resetSender,
		throttle:      throttle,
		logger:        logger,
		resetBaseURL:  cfg.Auth.ResetBaseURL,
		resetTokenTTL: resetTokenTTL,
		now:           time.Now,
	}
}

// Login verifies credentials and opens a session. During a throttle cooldown
// the attempt short-circuits before any store access.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if remaining, ok := srv.throttle.Allow(input.Email); !ok {
		seconds := int((remaining + time.Second - 1) / time.Second)

		return nil, domainerrors.ErrLoginThrottled.WithDetails(
			fmt.Sprintf("retry in %d seconds", seconds))
	}

	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.throttle.RecordFailure(input.Email)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(input.Password, admin.PasswordHash) {
		srv.throttle.RecordFailure(input.Email)
		srv.logger.WarnContext(ctx, "login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.throttle.RecordSuccess(input.Email)

	accessToken, refreshToken, err := srv.tokenSvc.GenerateTokens(admin.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.AdminSession{
		AdminID:   admin.ID,
		TokenHash: srv.tokenSvc.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenSvc.GetRefreshTokenDuration()),
	}
	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.logger.InfoContext(ctx, "admin logged in", slog.String("adminID", admin.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout closes the session identified by the refresh token. Unknown tokens
// are a no-op: the session is gone either way.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenSvc.HashToken(refreshToken)
	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// Refresh exchanges a valid refresh token for a new pair, rotating the
// session row in one transaction.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenSvc.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("invalid refresh token")
	}

	oldHash := srv.tokenSvc.HashToken(refreshToken)
	session, err := srv.sessionRepo.FindByTokenHash(ctx, oldHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionInvalid.WrapMessage("session not found")
		}

		return nil, errors.Wrap(err, "failed to find session")
	}
	if session.AdminID != claims.AdminID {
		return nil, domainerrors.ErrSessionInvalid.WrapMessage("session mismatch")
	}

	accessToken, newRefreshToken, err := srv.tokenSvc.GenerateTokens(claims.AdminID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		if err := sessionRepo.DeleteByTokenHash(ctx, oldHash); err != nil {
			return errors.Wrap(err, "failed to drop rotated session")
		}

		return sessionRepo.Create(ctx, &entity.AdminSession{
			AdminID:   claims.AdminID,
			TokenHash: srv.tokenSvc.HashToken(newRefreshToken),
			ExpiresAt: srv.now().Add(srv.tokenSvc.GetRefreshTokenDuration()),
		})
	})
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// ValidateAccess verifies an access token and returns the admin id.
func (srv *authService) ValidateAccess(ctx context.Context, accessToken string) (uuid.UUID, error) {
	claims, err := srv.tokenSvc.ValidateAccessToken(accessToken)
	if err != nil {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("invalid access token")
	}

	return claims.AdminID, nil
}

// ForgotPassword issues a reset token and hands the link to the sender.
// An unknown email returns success: the response never reveals whether an
// account exists.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	admin, err := srv.adminRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.logger.InfoContext(ctx, "password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find admin")
	}

	token := uuid.NewString()
	admin.ResetToken = token
	admin.ResetTokenExpiresAt = srv.now().Add(srv.resetTokenTTL)
	if err := srv.adminRepo.Update(ctx, admin); err != nil {
		return errors.Wrap(err, "failed to store reset token")
	}

	resetURL := fmt.Sprintf("%s?token=%s", srv.resetBaseURL, url.QueryEscape(token))
	if err := srv.resetSender.SendResetLink(ctx, admin.Email, resetURL); err != nil {
		return errors.Wrap(err, "failed to send reset link")
	}

	return nil
}

// ResetPassword consumes a pending reset token, sets the new password, and
// closes every open session of the account.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	passwordHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		admin, err := adminRepo.FindByResetToken(ctx, input.Token)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return domainerrors.ErrSessionInvalid.WrapMessage("invalid reset token")
			}

			return errors.Wrap(err, "failed to find reset token")
		}
		if admin.ResetTokenExpiresAt.Before(srv.now()) {
			return domainerrors.ErrSessionInvalid.WrapMessage("reset token expired")
		}

		admin.PasswordHash = passwordHash
		admin.ResetToken = ""
		admin.ResetTokenExpiresAt = time.Time{}
		if err := adminRepo.Update(ctx, admin); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		// Force every open session to re-authenticate.
		if err := repoFactory.SessionRepo().DeleteByAdminID(ctx, admin.ID); err != nil {
			return errors.Wrap(err, "failed to close sessions")
		}

		srv.logger.InfoContext(ctx, "password reset completed", slog.String("adminID", admin.ID.String()))

		return nil
	})
}
