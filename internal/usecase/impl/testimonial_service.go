package impl

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// testimonialService implements the TestimonialUsecase interface.
type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
	blobStore       service.BlobStore
	logger          *slog.Logger
}

// NewTestimonialService is the constructor for testimonialService.
func NewTestimonialService(
	testimonialRepo repository.TestimonialRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
) usecase.TestimonialUsecase {
	return &testimonialService{
		testimonialRepo: testimonialRepo,
		blobStore:       blobStore,
		logger:          logger,
	}
}

func (srv *testimonialService) ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error) {
	testimonials, err := srv.testimonialRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list testimonials")
	}

	return testimonials, nil
}

func (srv *testimonialService) GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "testimonial not found")
		}

		return nil, errors.Wrap(err, "failed to find testimonial")
	}

	return testimonial, nil
}

func (srv *testimonialService) CreateTestimonial(ctx context.Context, input *usecase.CreateTestimonialInput) (*entity.Testimonial, error) {
	rating := input.Rating
	if rating == 0 {
		rating = entity.DefaultTestimonialRating
	}
	if rating < 1 || rating > 5 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
	}

	testimonial := &entity.Testimonial{
		AuthorName:  input.AuthorName,
		Title:       input.Title,
		Description: input.Description,
		Position:    input.Position,
		PhotoURL:    input.PhotoURL,
		Rating:      rating,
		OrderIndex:  input.OrderIndex,
	}
	if err := srv.testimonialRepo.Create(ctx, testimonial); err != nil {
		return nil, errors.Wrap(err, "failed to create testimonial")
	}

	srv.logger.InfoContext(ctx, "testimonial created", slog.String("id", testimonial.ID.String()))

	return testimonial, nil
}

func (srv *testimonialService) UpdateTestimonial(ctx context.Context, id uuid.UUID, input *usecase.UpdateTestimonialInput) (*entity.Testimonial, error) {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "testimonial not found")
		}

		return nil, errors.Wrap(err, "failed to find testimonial")
	}

	if input.AuthorName != nil {
		testimonial.AuthorName = *input.AuthorName
	}
	if input.Title != nil {
		testimonial.Title = *input.Title
	}
	if input.Description != nil {
		testimonial.Description = *input.Description
	}
	if input.Position != nil {
		testimonial.Position = *input.Position
	}
	if input.PhotoURL != nil {
		testimonial.PhotoURL = *input.PhotoURL
	}
	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "rating must be between 1 and 5")
		}
		testimonial.Rating = *input.Rating
	}
	if input.OrderIndex != nil {
		testimonial.OrderIndex = *input.OrderIndex
	}

	if err := srv.testimonialRepo.Update(ctx, testimonial); err != nil {
		return nil, errors.Wrap(err, "failed to update testimonial")
	}

	return testimonial, nil
}

func (srv *testimonialService) DeleteTestimonial(ctx context.Context, id uuid.UUID) error {
	testimonial, err := srv.testimonialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTestimonialNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "testimonial not found")
		}

		return errors.Wrap(err, "failed to find testimonial")
	}

	cleanupBlobs(ctx, srv.blobStore, srv.logger, testimonial.PhotoURL)

	if err := srv.testimonialRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete testimonial")
	}

	srv.logger.InfoContext(ctx, "testimonial deleted", slog.String("id", id.String()))

	return nil
}
