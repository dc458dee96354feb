package postgres

import (
	"context"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// teamMemberRepository implements the domain.TeamMemberRepository interface.
type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository is the constructor for teamMemberRepository.
func NewTeamMemberRepository(db *gorm.DB) repository.TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (repo *teamMemberRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	var memberModels []*model.TeamMemberModel
	if err := repo.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	members := make([]*entity.TeamMember, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toTeamMemberDomain(memberM))
	}

	return members, nil
}

func (repo *teamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	var memberM model.TeamMemberModel
	if err := repo.db.WithContext(ctx).First(&memberM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTeamMemberNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTeamMemberDomain(&memberM), nil
}

func (repo *teamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	memberM := fromTeamMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(memberM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required team member fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create team member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt

	return nil
}

func (repo *teamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	memberM := fromTeamMemberDomain(member)

	result := repo.db.WithContext(ctx).Model(&model.TeamMemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"name":        memberM.Name,
			"position":    memberM.Position,
			"description": memberM.Description,
			"photo_url":   memberM.PhotoURL,
			"order_index": memberM.OrderIndex,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update team member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamMemberNotFound
	}

	return nil
}

func (repo *teamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.TeamMemberModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete team member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTeamMemberNotFound
	}

	return nil
}

func toTeamMemberDomain(memberM *model.TeamMemberModel) *entity.TeamMember {
	return &entity.TeamMember{
		ID:          memberM.ID,
		Name:        memberM.Name,
		Position:    memberM.Position,
		Description: memberM.Description,
		PhotoURL:    memberM.PhotoURL,
		OrderIndex:  memberM.OrderIndex,
		CreatedAt:   memberM.CreatedAt,
	}
}

func fromTeamMemberDomain(member *entity.TeamMember) *model.TeamMemberModel {
	return &model.TeamMemberModel{
		ID:          member.ID,
		Name:        member.Name,
		Position:    member.Position,
		Description: member.Description,
		PhotoURL:    member.PhotoURL,
		OrderIndex:  member.OrderIndex,
		CreatedAt:   member.CreatedAt,
	}
}
