package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTeamMemberNotFound is returned when a team member row does not exist.
var ErrTeamMemberNotFound = errors.New("team member not found")

// TeamMemberRepository defines persistence operations for team members.
type TeamMemberRepository interface {
	List(ctx context.Context) ([]*entity.TeamMember, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	Create(ctx context.Context, member *entity.TeamMember) error
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}
