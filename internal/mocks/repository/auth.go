package repository

import (
	"context"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a testify double for repository.AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	args := m.Called(ctx, email)
	if admin, ok := args.Get(0).(*entity.AdminUser); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	args := m.Called(ctx, id)
	if admin, ok := args.Get(0).(*entity.AdminUser); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) FindByResetToken(ctx context.Context, tokenHash string) (*entity.AdminUser, error) {
	args := m.Called(ctx, tokenHash)
	if admin, ok := args.Get(0).(*entity.AdminUser); ok {
		return admin, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *entity.AdminUser) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

// MockSessionRepository is a testify double for repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *entity.AdminSession) error {
	args := m.Called(ctx, session)

	return args.Error(0)
}

func (m *MockSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error) {
	args := m.Called(ctx, tokenHash)
	if session, ok := args.Get(0).(*entity.AdminSession); ok {
		return session, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *MockSessionRepository) DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error {
	args := m.Called(ctx, adminID)

	return args.Error(0)
}

// MockTransactionManager is a testify double for repository.TransactionManager.
// Execute runs the supplied function against the factory registered with the
// mock, so tests exercise the real closure body.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if factory, ok := args.Get(0).(repository.RepositoryFactory); ok {
		if err := fn(factory); err != nil {
			return err
		}
	}

	return args.Error(1)
}

// MockRepositoryFactory is a testify double for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) ServiceRepo() repository.ServiceRepository {
	args := m.Called()

	return args.Get(0).(repository.ServiceRepository)
}

func (m *MockRepositoryFactory) AdminRepo() repository.AdminRepository {
	args := m.Called()

	return args.Get(0).(repository.AdminRepository)
}

func (m *MockRepositoryFactory) SessionRepo() repository.SessionRepository {
	args := m.Called()

	return args.Get(0).(repository.SessionRepository)
}
