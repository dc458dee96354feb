package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ProjectUsecase defines the business operations for portfolio projects.
type ProjectUsecase interface {
	// ListProjects returns every project in display order, optionally
	// filtered to one service.
	ListProjects(ctx context.Context, serviceID *uuid.UUID) ([]*entity.Project, error)

	// ListThemes returns the distinct non-empty theme tags in use.
	ListThemes(ctx context.Context) ([]string, error)

	// GetProject returns a single project.
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// CreateProject adds a project under a service. Under a photo-kind
	// service the image list may hold a capped gallery and a theme tag;
	// under any other service it is a single image and the theme is
	// discarded.
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)

	// UpdateProject edits a project. Gallery rules are re-applied against
	// the service the project ends up under.
	UpdateProject(ctx context.Context, id uuid.UUID, input *UpdateProjectInput) (*entity.Project, error)

	// DeleteProject removes the project and best-effort deletes every
	// blob of its gallery.
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateProjectInput defines the data required to create a project.
// ImageURLs is stored as a comma-joined list; order is preserved.
type CreateProjectInput struct {
	ServiceID   uuid.UUID `json:"service_id" validate:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"image_urls"`
	Theme       string    `json:"theme"`
	OrderIndex  int       `json:"order_index"`
}

// UpdateProjectInput defines the data required to update a project.
// Nil fields are left untouched; an empty non-nil ImageURLs clears the
// gallery.
type UpdateProjectInput struct {
	ServiceID   *uuid.UUID `json:"service_id,omitempty"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	ImageURLs   *[]string  `json:"image_urls,omitempty"`
	Theme       *string    `json:"theme,omitempty"`
	OrderIndex  *int       `json:"order_index,omitempty"`
}
