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

// DefaultMaxGalleryImages caps the gallery of a photo-kind project.
const DefaultMaxGalleryImages = 4

// projectService implements the ProjectUsecase interface.
type projectService struct {
	projectRepo repository.ProjectRepository
	serviceRepo repository.ServiceRepository
	blobStore   service.BlobStore
	logger      *slog.Logger
	maxGallery  int
}

// NewProjectService is the constructor for projectService.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	serviceRepo repository.ServiceRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.ProjectUsecase {
	maxGallery := cfg.Content.MaxGalleryImages
	if maxGallery <= 0 {
		maxGallery = DefaultMaxGalleryImages
	}

	return &projectService{
		projectRepo: projectRepo,
		serviceRepo: serviceRepo,
		blobStore:   blobStore,
		logger:      logger,
		maxGallery:  maxGallery,
	}
}

// ListProjects returns projects in display order, optionally filtered to one
// service. An unknown service id yields an empty list, not an error.
func (srv *projectService) ListProjects(ctx context.Context, serviceID *uuid.UUID) ([]*entity.Project, error) {
	var (
		projects []*entity.Project
		err      error
	)
	if serviceID != nil {
		projects, err = srv.projectRepo.ListByService(ctx, *serviceID)
	} else {
		projects, err = srv.projectRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// ListThemes returns the distinct non-empty theme tags in use.
func (srv *projectService) ListThemes(ctx context.Context) ([]string, error) {
	themes, err := srv.projectRepo.ListThemes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list themes")
	}

	return themes, nil
}

// GetProject returns a single project.
func (srv *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	return project, nil
}

// CreateProject adds a project under a service. The gallery rules depend on
// the owning service: a photo-kind service allows a capped multi-image
// gallery plus a theme tag, any other service allows one image and no theme.
func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	owner, err := srv.serviceRepo.FindByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find owning service")
	}

	imageURL, theme, err := srv.applyGalleryRules(owner, input.ImageURLs, input.Theme)
	if err != nil {
		return nil, err
	}

	project := &entity.Project{
		ServiceID:   input.ServiceID,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    imageURL,
		Theme:       theme,
		OrderIndex:  input.OrderIndex,
	}
	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.logger.InfoContext(ctx, "project created", slog.String("id", project.ID.String()))

	return project, nil
}

// UpdateProject edits a project. A nil ImageURLs keeps the stored gallery
// untouched; gallery rules are re-applied against the service the project
// ends up under.
func (srv *projectService) UpdateProject(ctx context.Context, id uuid.UUID, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	if input.ServiceID != nil {
		project.ServiceID = *input.ServiceID
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.OrderIndex != nil {
		project.OrderIndex = *input.OrderIndex
	}

	owner, err := srv.serviceRepo.FindByID(ctx, project.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "service not found")
		}

		return nil, errors.Wrap(err, "failed to find owning service")
	}

	images := project.Images()
	if input.ImageURLs != nil {
		images = *input.ImageURLs
	}
	theme := project.Theme
	if input.Theme != nil {
		theme = *input.Theme
	}

	imageURL, theme, err := srv.applyGalleryRules(owner, images, theme)
	if err != nil {
		return nil, err
	}
	project.ImageURL = imageURL
	project.Theme = theme

	if err := srv.projectRepo.Update(ctx, project); err != nil {
		return nil, errors.Wrap(err, "failed to update project")
	}

	return project, nil
}

// DeleteProject removes the project and best-effort deletes every blob of
// its gallery.
func (srv *projectService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "project not found")
		}

		return errors.Wrap(err, "failed to find project")
	}

	cleanupBlobs(ctx, srv.blobStore, srv.logger, project.Images()...)

	if err := srv.projectRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete project")
	}

	srv.logger.InfoContext(ctx, "project deleted", slog.String("id", id.String()))

	return nil
}

// applyGalleryRules validates an image list against the owning service and
// returns the stored comma-joined form plus the effective theme.
func (srv *projectService) applyGalleryRules(owner *entity.Service, images []string, theme string) (string, string, error) {
	if owner.IsPhotoKind() {
		if len(images) > srv.maxGallery {
			return "", "", domainerrors.ErrGalleryTooLarge.WithDetails(
				fmt.Sprintf("a gallery holds at most %d images", srv.maxGallery))
		}

		return entity.JoinImageList(images), theme, nil
	}

	if len(images) > 1 {
		return "", "", domainerrors.ErrGalleryTooLarge.WithDetails(
			"only photography projects carry multiple images")
	}

	// Theme tags only exist in gallery mode.
	return entity.JoinImageList(images), "", nil
}
