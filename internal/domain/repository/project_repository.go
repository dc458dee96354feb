package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project row does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	// List retrieves all projects ordered by order_index ascending.
	List(ctx context.Context) ([]*entity.Project, error)

	// ListByService retrieves the projects of one service, same ordering.
	// An unknown service id yields an empty slice, not an error: orphaned
	// references after a service delete are expected.
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Project, error)

	// ListThemes returns the distinct non-empty theme values across all
	// projects, sorted alphabetically.
	ListThemes(ctx context.Context) ([]string, error)

	// FindByID retrieves a single project by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// Create persists a new project.
	Create(ctx context.Context, project *entity.Project) error

	// Update modifies an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project row permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
