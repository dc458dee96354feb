// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// heroImageRepository implements the domain.HeroImageRepository interface.
type heroImageRepository struct {
	db *gorm.DB
}

// NewHeroImageRepository is the constructor for heroImageRepository.
func NewHeroImageRepository(db *gorm.DB) repository.HeroImageRepository {
	return &heroImageRepository{db: db}
}

// List retrieves all hero images ordered by order_index. The created_at and
// id tiebreakers keep equal indexes in a stable order across calls.
func (repo *heroImageRepository) List(ctx context.Context) ([]*entity.HeroImage, error) {
	var heroModels []*model.HeroImageModel
	if err := repo.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&heroModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	heroes := make([]*entity.HeroImage, 0, len(heroModels))
	for _, heroM := range heroModels {
		heroes = append(heroes, toHeroImageDomain(heroM))
	}

	return heroes, nil
}

// FindByID retrieves a single hero image by its unique ID.
func (repo *heroImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	var heroM model.HeroImageModel
	if err := repo.db.WithContext(ctx).First(&heroM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHeroImageNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toHeroImageDomain(&heroM), nil
}

// Count returns the number of hero image rows.
func (repo *heroImageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.HeroImageModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// Create persists a new hero image.
func (repo *heroImageRepository) Create(ctx context.Context, hero *entity.HeroImage) error {
	heroM := fromHeroImageDomain(hero)

	if err := repo.db.WithContext(ctx).Create(heroM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required hero image fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hero image")
	}

	// Update the entity with generated values
	hero.ID = heroM.ID
	hero.CreatedAt = heroM.CreatedAt

	return nil
}

// Update modifies an existing hero image.
func (repo *heroImageRepository) Update(ctx context.Context, hero *entity.HeroImage) error {
	heroM := fromHeroImageDomain(hero)

	result := repo.db.WithContext(ctx).Model(&model.HeroImageModel{}).
		Where("id = ?", hero.ID).
		Updates(map[string]any{
			"image_url":   heroM.ImageURL,
			"title":       heroM.Title,
			"description": heroM.Description,
			"order_index": heroM.OrderIndex,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hero image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHeroImageNotFound
	}

	return nil
}

// Delete removes a hero image row permanently.
func (repo *heroImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.HeroImageModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete hero image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHeroImageNotFound
	}

	return nil
}

func toHeroImageDomain(heroM *model.HeroImageModel) *entity.HeroImage {
	return &entity.HeroImage{
		ID:          heroM.ID,
		ImageURL:    heroM.ImageURL,
		Title:       heroM.Title,
		Description: heroM.Description,
		OrderIndex:  heroM.OrderIndex,
		CreatedAt:   heroM.CreatedAt,
	}
}

func fromHeroImageDomain(hero *entity.HeroImage) *model.HeroImageModel {
	return &model.HeroImageModel{
		ID:          hero.ID,
		ImageURL:    hero.ImageURL,
		Title:       hero.Title,
		Description: hero.Description,
		OrderIndex:  hero.OrderIndex,
		CreatedAt:   hero.CreatedAt,
	}
}
