package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service row does not exist.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines persistence operations for the service catalog.
type ServiceRepository interface {
	// List retrieves all services ordered by order_index ascending.
	List(ctx context.Context) ([]*entity.Service, error)

	// FindByID retrieves a single service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindByTitle retrieves a service by its normalized (lowercase) title.
	FindByTitle(ctx context.Context, title string) (*entity.Service, error)

	// Count returns the number of service rows.
	Count(ctx context.Context) (int64, error)

	// Create persists a new service.
	Create(ctx context.Context, service *entity.Service) error

	// Update modifies an existing service.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service row permanently. Projects referencing the
	// service are left in place (non-cascading reference).
	Delete(ctx context.Context, id uuid.UUID) error
}
