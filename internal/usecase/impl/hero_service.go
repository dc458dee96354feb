// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultMaxHeroImages caps the landing-page carousel.
const DefaultMaxHeroImages = 8

// heroService implements the HeroUsecase interface.
type heroService struct {
	heroRepo  repository.HeroImageRepository
	blobStore service.BlobStore
	logger    *slog.Logger
	maxImages int
}

// NewHeroService is the constructor for heroService.
func NewHeroService(
	heroRepo repository.HeroImageRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.HeroUsecase {
	maxImages := cfg.Content.MaxHeroImages
	if maxImages <= 0 {
		maxImages = DefaultMaxHeroImages
	}

	return &heroService{
		heroRepo:  heroRepo,
		blobStore: blobStore,
		logger:    logger,
		maxImages: maxImages,
	}
}

// ListHeroImages returns the carousel tiles in display order.
func (srv *heroService) ListHeroImages(ctx context.Context) ([]*entity.HeroImage, error) {
	heroes, err := srv.heroRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hero images")
	}

	return heroes, nil
}

// GetHeroImage returns a single tile.
func (srv *heroService) GetHeroImage(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	hero, err := srv.heroRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHeroImageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "hero image not found")
		}

		return nil, errors.Wrap(err, "failed to find hero image")
	}

	return hero, nil
}

// CreateHeroImage adds a tile. The cap is policy, checked with a count query
// before anything is written.
func (srv *heroService) CreateHeroImage(ctx context.Context, input *usecase.CreateHeroImageInput) (*entity.HeroImage, error) {
	count, err := srv.heroRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hero images")
	}
	if count >= int64(srv.maxImages) {
		return nil, domainerrors.ErrCollectionFull.WithDetails(
			fmt.Sprintf("the hero carousel holds at most %d images", srv.maxImages))
	}

	hero := &entity.HeroImage{
		ImageURL:    input.ImageURL,
		Title:       input.Title,
		Description: input.Description,
		OrderIndex:  input.OrderIndex,
	}
	if err := srv.heroRepo.Create(ctx, hero); err != nil {
		return nil, errors.Wrap(err, "failed to create hero image")
	}

	srv.logger.InfoContext(ctx, "hero image created", slog.String("id", hero.ID.String()))

	return hero, nil
}

// CreateHeroImages adds a batch of tiles. The cap is checked once against
// the whole batch, so a request that would overflow writes nothing.
func (srv *heroService) CreateHeroImages(ctx context.Context, inputs []*usecase.CreateHeroImageInput) ([]*entity.HeroImage, error) {
	count, err := srv.heroRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count hero images")
	}
	if count+int64(len(inputs)) > int64(srv.maxImages) {
		return nil, domainerrors.ErrCollectionFull.WithDetails(
			fmt.Sprintf("the hero carousel holds at most %d images", srv.maxImages))
	}

	heroes := make([]*entity.HeroImage, 0, len(inputs))
	for _, input := range inputs {
		hero := &entity.HeroImage{
			ImageURL:    input.ImageURL,
			Title:       input.Title,
			Description: input.Description,
			OrderIndex:  input.OrderIndex,
		}
		if err := srv.heroRepo.Create(ctx, hero); err != nil {
			return nil, errors.Wrap(err, "failed to create hero image")
		}
		heroes = append(heroes, hero)
	}

	srv.logger.InfoContext(ctx, "hero images created", slog.Int("count", len(heroes)))

	return heroes, nil
}

// UpdateHeroImage edits a tile in place. Nil input fields keep the stored
// value, so an edit that never touches the image keeps the image.
func (srv *heroService) UpdateHeroImage(ctx context.Context, id uuid.UUID, input *usecase.UpdateHeroImageInput) (*entity.HeroImage, error) {
	hero, err := srv.heroRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHeroImageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "hero image not found")
		}

		return nil, errors.Wrap(err, "failed to find hero image")
	}

	if input.ImageURL != nil {
		hero.ImageURL = *input.ImageURL
	}
	if input.Title != nil {
		hero.Title = *input.Title
	}
	if input.Description != nil {
		hero.Description = *input.Description
	}
	if input.OrderIndex != nil {
		hero.OrderIndex = *input.OrderIndex
	}

	if err := srv.heroRepo.Update(ctx, hero); err != nil {
		return nil, errors.Wrap(err, "failed to update hero image")
	}

	return hero, nil
}

// DeleteHeroImage removes the tile. The blob is cleaned up best-effort; the
// row delete is authoritative and never blocked by storage failures.
func (srv *heroService) DeleteHeroImage(ctx context.Context, id uuid.UUID) error {
	hero, err := srv.heroRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHeroImageNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "hero image not found")
		}

		return errors.Wrap(err, "failed to find hero image")
	}

	cleanupBlobs(ctx, srv.blobStore, srv.logger, hero.ImageURL)

	if err := srv.heroRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete hero image")
	}

	srv.logger.InfoContext(ctx, "hero image deleted", slog.String("id", id.String()))

	return nil
}
