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

// testimonialRepository implements the domain.TestimonialRepository interface.
type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository is the constructor for testimonialRepository.
func NewTestimonialRepository(db *gorm.DB) repository.TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (repo *testimonialRepository) List(ctx context.Context) ([]*entity.Testimonial, error) {
	var testimonialModels []*model.TestimonialModel
	if err := repo.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&testimonialModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	testimonials := make([]*entity.Testimonial, 0, len(testimonialModels))
	for _, testimonialM := range testimonialModels {
		testimonials = append(testimonials, toTestimonialDomain(testimonialM))
	}

	return testimonials, nil
}

func (repo *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	var testimonialM model.TestimonialModel
	if err := repo.db.WithContext(ctx).First(&testimonialM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTestimonialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTestimonialDomain(&testimonialM), nil
}

func (repo *testimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)

	if err := repo.db.WithContext(ctx).Create(testimonialM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required testimonial fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create testimonial")
	}

	testimonial.ID = testimonialM.ID
	testimonial.CreatedAt = testimonialM.CreatedAt

	return nil
}

func (repo *testimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	testimonialM := fromTestimonialDomain(testimonial)

	result := repo.db.WithContext(ctx).Model(&model.TestimonialModel{}).
		Where("id = ?", testimonial.ID).
		Updates(map[string]any{
			"author_name": testimonialM.AuthorName,
			"title":       testimonialM.Title,
			"description": testimonialM.Description,
			"position":    testimonialM.Position,
			"photo_url":   testimonialM.PhotoURL,
			"rating":      testimonialM.Rating,
			"order_index": testimonialM.OrderIndex,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update testimonial")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

func (repo *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TestimonialModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete testimonial")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTestimonialNotFound
	}

	return nil
}

func toTestimonialDomain(testimonialM *model.TestimonialModel) *entity.Testimonial {
	return &entity.Testimonial{
		ID:          testimonialM.ID,
		AuthorName:  testimonialM.AuthorName,
		Title:       testimonialM.Title,
		Description: testimonialM.Description,
		Position:    testimonialM.Position,
		PhotoURL:    testimonialM.PhotoURL,
		Rating:      testimonialM.Rating,
		OrderIndex:  testimonialM.OrderIndex,
		CreatedAt:   testimonialM.CreatedAt,
	}
}

func fromTestimonialDomain(testimonial *entity.Testimonial) *model.TestimonialModel {
	return &model.TestimonialModel{
		ID:          testimonial.ID,
		AuthorName:  testimonial.AuthorName,
		Title:       testimonial.Title,
		Description: testimonial.Description,
		Position:    testimonial.Position,
		PhotoURL:    testimonial.PhotoURL,
		Rating:      testimonial.Rating,
		OrderIndex:  testimonial.OrderIndex,
		CreatedAt:   testimonial.CreatedAt,
	}
}
