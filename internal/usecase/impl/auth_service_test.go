package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	domainservice "vitrine/internal/domain/service"
	"vitrine/internal/infra/auth"
	mockRepo "vitrine/internal/mocks/repository"
	mockService "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	adminRepo   *mockRepo.MockAdminRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
	tokenSvc    *mockService.MockTokenService
	resetSender *mockService.MockResetLinkSender
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	txManager := new(mockRepo.MockTransactionManager)
	adminRepo := new(mockRepo.MockAdminRepository)
	sessionRepo := new(mockRepo.MockSessionRepository)
	hasher := new(mockService.MockPasswordHasher)
	tokenSvc := new(mockService.MockTokenService)
	resetSender := new(mockService.MockResetLinkSender)
	throttle := auth.NewLoginThrottle(5, 30*time.Second)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Auth.ResetBaseURL = "https://admin.example.com/reset-password"

	service := NewAuthService(txManager, adminRepo, sessionRepo, hasher, tokenSvc, resetSender, throttle, logger, cfg)

	return authServiceFixtures{
		service:     service,
		txManager:   txManager,
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		resetSender: resetSender,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}
	fx.adminRepo.On("FindByEmail", ctx, admin.Email).Return(admin, nil)
	fx.hasher.On("Check", "correct horse", "hashed").Return(true)
	fx.tokenSvc.On("GenerateTokens", admin.ID).Return("access-token", "refresh-token", nil)
	fx.tokenSvc.On("HashToken", "refresh-token").Return("refresh-hash")
	fx.tokenSvc.On("GetRefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.sessionRepo.On("Create", ctx, mock.MatchedBy(func(s *entity.AdminSession) bool {
		return s.AdminID == admin.ID && s.TokenHash == "refresh-hash"
	})).Return(nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "correct horse"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	fx.sessionRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}
	fx.adminRepo.On("FindByEmail", ctx, admin.Email).Return(admin, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenSvc.AssertNotCalled(t, "GenerateTokens")
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAdminNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	require.Error(t, err)
	// Unknown accounts fail exactly like wrong passwords.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_ThrottledAfterFiveFailures(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com", PasswordHash: "hashed"}
	fx.adminRepo.On("FindByEmail", ctx, admin.Email).Return(admin, nil)
	fx.hasher.On("Check", "wrong", "hashed").Return(false)

	for i := 0; i < 5; i++ {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "wrong"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: admin.Email, Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLoginThrottled)
	// The throttled attempt short-circuits before the store.
	fx.adminRepo.AssertNumberOfCalls(t, "FindByEmail", 5)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.tokenSvc.On("HashToken", "refresh-token").Return("refresh-hash")
	fx.sessionRepo.On("DeleteByTokenHash", ctx, "refresh-hash").Return(nil)

	err := fx.service.Logout(ctx, "refresh-token")

	require.NoError(t, err)
	fx.sessionRepo.AssertExpectations(t)
}

func TestAuthService_ValidateAccess(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	adminID := uuid.New()
	fx.tokenSvc.On("ValidateAccessToken", "good-token").
		Return(&domainservice.Claims{AdminID: adminID, Type: "access"}, nil)
	fx.tokenSvc.On("ValidateAccessToken", "bad-token").
		Return(nil, errors.New("signature invalid"))

	got, err := fx.service.ValidateAccess(ctx, "good-token")
	require.NoError(t, err)
	assert.Equal(t, adminID, got)

	_, err = fx.service.ValidateAccess(ctx, "bad-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAuthService_ForgotPassword_StoresTokenAndSendsLink(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{ID: uuid.New(), Email: "admin@example.com"}
	fx.adminRepo.On("FindByEmail", ctx, admin.Email).Return(admin, nil)
	fx.adminRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.AdminUser) bool {
		return a.ResetToken != "" && a.ResetTokenExpiresAt.After(time.Now())
	})).Return(nil)
	fx.resetSender.On("SendResetLink", ctx, admin.Email, mock.MatchedBy(func(url string) bool {
		return len(url) > 0
	})).Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: admin.Email})

	require.NoError(t, err)
	fx.resetSender.AssertExpectations(t)
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.adminRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrAdminNotFound)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"})

	require.NoError(t, err)
	fx.resetSender.AssertNotCalled(t, "SendResetLink")
	fx.adminRepo.AssertNotCalled(t, "Update")
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{
		ID:                  uuid.New(),
		Email:               "admin@example.com",
		ResetToken:          "reset-token",
		ResetTokenExpiresAt: time.Now().Add(30 * time.Minute),
	}

	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("AdminRepo").Return(fx.adminRepo)
	factory.On("SessionRepo").Return(fx.sessionRepo)
	fx.txManager.
		On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory, nil)

	fx.hasher.On("Hash", "NewStrongPass1!").Return("new-hash", nil)
	fx.adminRepo.On("FindByResetToken", ctx, "reset-token").Return(admin, nil)
	fx.adminRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.AdminUser) bool {
		return a.PasswordHash == "new-hash" && a.ResetToken == "" && a.ResetTokenExpiresAt.IsZero()
	})).Return(nil)
	fx.sessionRepo.On("DeleteByAdminID", ctx, admin.ID).Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "reset-token",
		NewPassword: "NewStrongPass1!",
	})

	require.NoError(t, err)
	fx.sessionRepo.AssertExpectations(t)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	admin := &entity.AdminUser{
		ID:                  uuid.New(),
		ResetToken:          "stale-token",
		ResetTokenExpiresAt: time.Now().Add(-time.Minute),
	}

	factory := new(mockRepo.MockRepositoryFactory)
	factory.On("AdminRepo").Return(fx.adminRepo)
	fx.txManager.
		On("Execute", ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(factory, nil)

	fx.hasher.On("Hash", "NewStrongPass1!").Return("new-hash", nil)
	fx.adminRepo.On("FindByResetToken", ctx, "stale-token").Return(admin, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "stale-token",
		NewPassword: "NewStrongPass1!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
	fx.adminRepo.AssertNotCalled(t, "Update")
}
