package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// TeamUsecase defines the business operations for the team page.
type TeamUsecase interface {
	ListTeamMembers(ctx context.Context) ([]*entity.TeamMember, error)
	GetTeamMember(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	CreateTeamMember(ctx context.Context, input *CreateTeamMemberInput) (*entity.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id uuid.UUID, input *UpdateTeamMemberInput) (*entity.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateTeamMemberInput defines the data required to create a team member.
type CreateTeamMemberInput struct {
	Name        string `json:"name"`
	Position    string `json:"position" validate:"required"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateTeamMemberInput defines the data required to update a team member.
// Nil fields are left untouched.
type UpdateTeamMemberInput struct {
	Name        *string `json:"name,omitempty"`
	Position    *string `json:"position,omitempty"`
	Description *string `json:"description,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
