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

// DefaultMaxServices caps the service catalog.
const DefaultMaxServices = 6

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	serviceRepo repository.ServiceRepository
	blobStore   service.BlobStore
	logger      *slog.Logger
	maxServices int
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	serviceRepo repository.ServiceRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.CatalogUsecase {
	maxServices := cfg.Content.MaxServices
	if maxServices <= 0 {
		maxServices = DefaultMaxServices
	}

	return &catalogService{
		txManager:   txManager,
		serviceRepo: serviceRepo,
		blobStore:   blobStore,
		logger:      logger,
		maxServices: maxServices,
	}
}

// ListServices returns the catalog in display order.
func (srv *catalogService) ListServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// GetService returns a single catalog entry.
func (srv *catalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return svc, nil
}

// CreateService adds a catalog entry. The title is normalized to lowercase
// and pre-checked for uniqueness inside the same transaction as the insert.
func (srv *catalogService) CreateService(ctx context.Context, input *usecase.CreateServiceInput) (*entity.Service, error) {
	title := entity.NormalizeTitle(input.Title)
	if title == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "service title is required")
	}

	svc := &entity.Service{
		Title:       title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		OrderIndex:  input.OrderIndex,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		count, err := serviceRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count services")
		}
		if count >= int64(srv.maxServices) {
			return domainerrors.ErrCollectionFull.WithDetails(
				fmt.Sprintf("the catalog holds at most %d services", srv.maxServices))
		}

		if _, err := serviceRepo.FindByTitle(ctx, title); err == nil {
			return domainerrors.ErrServiceTitleTaken.WithDetails(title)
		} else if !errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(err, "failed to check service title")
		}

		return serviceRepo.Create(ctx, svc)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.InfoContext(ctx, "service created",
		slog.String("id", svc.ID.String()),
		slog.String("title", svc.Title),
	)

	return svc, nil
}

// UpdateService edits an entry. A changed title is re-normalized and checked
// against the other entries, excluding the entry itself.
func (srv *catalogService) UpdateService(ctx context.Context, id uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	var updated *entity.Service

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		serviceRepo := repoFactory.ServiceRepo()

		svc, err := serviceRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "service not found")
			}

			return errors.Wrap(err, "failed to find service")
		}

		if input.Title != nil {
			title := entity.NormalizeTitle(*input.Title)
			if title == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "service title is required")
			}
			if title != svc.Title {
				if other, err := serviceRepo.FindByTitle(ctx, title); err == nil && other.ID != id {
					return domainerrors.ErrServiceTitleTaken.WithDetails(title)
				} else if err != nil && !errors.Is(err, repository.ErrServiceNotFound) {
					return errors.Wrap(err, "failed to check service title")
				}
			}
			svc.Title = title
		}
		if input.Description != nil {
			svc.Description = *input.Description
		}
		if input.ImageURL != nil {
			svc.ImageURL = *input.ImageURL
		}
		if input.OrderIndex != nil {
			svc.OrderIndex = *input.OrderIndex
		}

		if err := serviceRepo.Update(ctx, svc); err != nil {
			return errors.Wrap(err, "failed to update service")
		}
		updated = svc

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteService removes the entry and best-effort deletes its cover blob.
// Projects referencing the service stay behind with a dangling service id.
func (srv *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "service not found")
		}

		return errors.Wrap(err, "failed to find service")
	}

	cleanupBlobs(ctx, srv.blobStore, srv.logger, svc.ImageURL)

	if err := srv.serviceRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete service")
	}

	srv.logger.InfoContext(ctx, "service deleted",
		slog.String("id", id.String()),
		slog.String("title", svc.Title),
	)

	return nil
}
