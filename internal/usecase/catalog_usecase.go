package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the business operations for the service catalog.
type CatalogUsecase interface {
	// ListServices returns the catalog in display order.
	ListServices(ctx context.Context) ([]*entity.Service, error)

	// GetService returns a single catalog entry.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// CreateService adds a catalog entry. Titles are normalized to
	// lowercase and must be unique; the catalog is capped.
	CreateService(ctx context.Context, input *CreateServiceInput) (*entity.Service, error)

	// UpdateService edits an entry. A changed title is re-normalized and
	// re-checked for uniqueness against the other entries.
	UpdateService(ctx context.Context, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)

	// DeleteService removes the entry and best-effort deletes its cover
	// blob. Projects referencing the service are left orphaned.
	DeleteService(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateServiceInput defines the data required to create a catalog entry.
type CreateServiceInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateServiceInput defines the data required to update a catalog entry.
// Nil fields are left untouched.
type UpdateServiceInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
