package impl

import (
	"context"
	"log/slog"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	"vitrine/internal/domain/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// teamService implements the TeamUsecase interface.
type teamService struct {
	teamRepo  repository.TeamMemberRepository
	blobStore service.BlobStore
	logger    *slog.Logger
}

// NewTeamService is the constructor for teamService.
func NewTeamService(
	teamRepo repository.TeamMemberRepository,
	blobStore service.BlobStore,
	logger *slog.Logger,
) usecase.TeamUsecase {
	return &teamService{
		teamRepo:  teamRepo,
		blobStore: blobStore,
		logger:    logger,
	}
}

func (srv *teamService) ListTeamMembers(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := srv.teamRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list team members")
	}

	return members, nil
}

func (srv *teamService) GetTeamMember(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	member, err := srv.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "team member not found")
		}

		return nil, errors.Wrap(err, "failed to find team member")
	}

	return member, nil
}

func (srv *teamService) CreateTeamMember(ctx context.Context, input *usecase.CreateTeamMemberInput) (*entity.TeamMember, error) {
	member := &entity.TeamMember{
		Name:        input.Name,
		Position:    input.Position,
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
		OrderIndex:  input.OrderIndex,
	}
	if err := srv.teamRepo.Create(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to create team member")
	}

	srv.logger.InfoContext(ctx, "team member created", slog.String("id", member.ID.String()))

	return member, nil
}

func (srv *teamService) UpdateTeamMember(ctx context.Context, id uuid.UUID, input *usecase.UpdateTeamMemberInput) (*entity.TeamMember, error) {
	member, err := srv.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "team member not found")
		}

		return nil, errors.Wrap(err, "failed to find team member")
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Position != nil {
		member.Position = *input.Position
	}
	if input.Description != nil {
		member.Description = *input.Description
	}
	if input.PhotoURL != nil {
		member.PhotoURL = *input.PhotoURL
	}
	if input.OrderIndex != nil {
		member.OrderIndex = *input.OrderIndex
	}

	if err := srv.teamRepo.Update(ctx, member); err != nil {
		return nil, errors.Wrap(err, "failed to update team member")
	}

	return member, nil
}

func (srv *teamService) DeleteTeamMember(ctx context.Context, id uuid.UUID) error {
	member, err := srv.teamRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTeamMemberNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "team member not found")
		}

		return errors.Wrap(err, "failed to find team member")
	}

	cleanupBlobs(ctx, srv.blobStore, srv.logger, member.PhotoURL)

	if err := srv.teamRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete team member")
	}

	srv.logger.InfoContext(ctx, "team member deleted", slog.String("id", id.String()))

	return nil
}
