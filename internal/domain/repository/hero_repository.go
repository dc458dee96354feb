// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHeroImageNotFound is returned when a hero image row does not exist.
var ErrHeroImageNotFound = errors.New("hero image not found")

// HeroImageRepository defines persistence operations for hero images.
type HeroImageRepository interface {
	// List retrieves all hero images ordered by order_index ascending.
	// Ties keep a stable, deterministic order across repeated calls.
	List(ctx context.Context) ([]*entity.HeroImage, error)

	// FindByID retrieves a single hero image by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error)

	// Count returns the number of hero image rows.
	Count(ctx context.Context) (int64, error)

	// Create persists a new hero image.
	Create(ctx context.Context, hero *entity.HeroImage) error

	// Update modifies an existing hero image.
	Update(ctx context.Context, hero *entity.HeroImage) error

	// Delete removes a hero image row permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
