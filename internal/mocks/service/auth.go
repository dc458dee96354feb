package service

import (
	"context"
	"time"

	domainservice "vitrine/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify double for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify double for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateTokens(adminID uuid.UUID) (string, string, error) {
	args := m.Called(adminID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*domainservice.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTokenService) HashToken(token string) string {
	args := m.Called(token)

	return args.String(0)
}

func (m *MockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

// MockResetLinkSender is a testify double for service.ResetLinkSender.
type MockResetLinkSender struct {
	mock.Mock
}

func (m *MockResetLinkSender) SendResetLink(ctx context.Context, email, resetURL string) error {
	args := m.Called(ctx, email, resetURL)

	return args.Error(0)
}
