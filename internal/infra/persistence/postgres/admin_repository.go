package postgres

import (
	"context"
	"time"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByEmail retrieves an admin account by email address.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).First(&adminM, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAdminDomain(&adminM), nil
}

// FindByID retrieves an admin account by ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).First(&adminM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAdminDomain(&adminM), nil
}

// FindByResetToken retrieves the admin holding a pending reset token.
func (repo *adminRepository) FindByResetToken(ctx context.Context, token string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	if err := repo.db.WithContext(ctx).First(&adminM, "reset_token = ? AND reset_token <> ''", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAdminDomain(&adminM), nil
}

// Update persists changes to an admin account (password hash, reset token).
func (repo *adminRepository) Update(ctx context.Context, admin *entity.AdminUser) error {
	adminM := fromAdminDomain(admin)

	result := repo.db.WithContext(ctx).Model(&model.AdminUserModel{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"password_hash":          adminM.PasswordHash,
			"reset_token":            adminM.ResetToken,
			"reset_token_expires_at": adminM.ResetTokenExpiresAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update admin user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.AdminSession) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSessionInvalid.WrapMessage("session already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByTokenHash retrieves a session by the hash of its refresh token.
// Expired rows are treated as absent.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.AdminSession, error) {
	var sessionM model.AdminSessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "token_hash = ?", tokenHash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.WithStack(err)
	}

	if sessionM.ExpiresAt.Before(time.Now()) {
		return nil, repository.ErrSessionNotFound
	}

	return toSessionDomain(&sessionM), nil
}

// DeleteByTokenHash removes a single session (logout). Deleting a session
// that is already gone is not an error.
func (repo *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.AdminSessionModel{}, "token_hash = ?", tokenHash).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteByAdminID removes every session of one admin.
func (repo *sessionRepository) DeleteByAdminID(ctx context.Context, adminID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.AdminSessionModel{}, "admin_id = ?", adminID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete admin sessions")
	}

	return nil
}

func toAdminDomain(adminM *model.AdminUserModel) *entity.AdminUser {
	admin := &entity.AdminUser{
		ID:           adminM.ID,
		Email:        adminM.Email,
		PasswordHash: adminM.PasswordHash,
		ResetToken:   adminM.ResetToken,
		CreatedAt:    adminM.CreatedAt,
		UpdatedAt:    adminM.UpdatedAt,
	}
	if adminM.ResetTokenExpiresAt != nil {
		admin.ResetTokenExpiresAt = *adminM.ResetTokenExpiresAt
	}

	return admin
}

func fromAdminDomain(admin *entity.AdminUser) *model.AdminUserModel {
	adminM := &model.AdminUserModel{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		ResetToken:   admin.ResetToken,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
	if !admin.ResetTokenExpiresAt.IsZero() {
		expiresAt := admin.ResetTokenExpiresAt
		adminM.ResetTokenExpiresAt = &expiresAt
	}

	return adminM
}

func toSessionDomain(sessionM *model.AdminSessionModel) *entity.AdminSession {
	return &entity.AdminSession{
		ID:        sessionM.ID,
		AdminID:   sessionM.AdminID,
		TokenHash: sessionM.TokenHash,
		ExpiresAt: sessionM.ExpiresAt,
		CreatedAt: sessionM.CreatedAt,
	}
}

func fromSessionDomain(session *entity.AdminSession) *model.AdminSessionModel {
	return &model.AdminSessionModel{
		ID:        session.ID,
		AdminID:   session.AdminID,
		TokenHash: session.TokenHash,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}
