// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// HeroUsecase defines the business operations for the hero carousel.
type HeroUsecase interface {
	// ListHeroImages returns the carousel tiles in display order.
	ListHeroImages(ctx context.Context) ([]*entity.HeroImage, error)

	// GetHeroImage returns a single tile.
	GetHeroImage(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error)

	// CreateHeroImage adds a tile. The carousel is capped; a full carousel
	// rejects the create.
	CreateHeroImage(ctx context.Context, input *CreateHeroImageInput) (*entity.HeroImage, error)

	// CreateHeroImages adds several tiles at once. The whole batch is
	// checked against the cap before any row is written.
	CreateHeroImages(ctx context.Context, inputs []*CreateHeroImageInput) ([]*entity.HeroImage, error)

	// UpdateHeroImage edits a tile in place.
	UpdateHeroImage(ctx context.Context, id uuid.UUID, input *UpdateHeroImageInput) (*entity.HeroImage, error)

	// DeleteHeroImage removes the tile and best-effort deletes its blob.
	DeleteHeroImage(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateHeroImageInput defines the data required to create a hero tile.
type CreateHeroImageInput struct {
	ImageURL    string `json:"image_url" validate:"required,url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateHeroImageInput defines the data required to update a hero tile.
// Nil fields are left untouched.
type UpdateHeroImageInput struct {
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
