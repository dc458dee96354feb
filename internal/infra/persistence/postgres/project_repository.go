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

// projectRepository implements the domain.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// List retrieves all projects ordered by order_index.
func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProjectDomainSlice(projectModels), nil
}

// ListByService retrieves the projects of one service. An unknown service id
// yields an empty slice: orphaned references after a service delete are
// expected here.
func (repo *projectRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel
	if err := repo.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&projectModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toProjectDomainSlice(projectModels), nil
}

// ListThemes returns the distinct non-empty theme values across all projects.
func (repo *projectRepository) ListThemes(ctx context.Context) ([]string, error) {
	var themes []string
	if err := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).
		Distinct("theme").
		Where("theme <> ''").
		Order("theme ASC").
		Pluck("theme", &themes).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return themes, nil
}

// FindByID retrieves a single project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	if err := repo.db.WithContext(ctx).First(&projectM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProjectDomain(&projectM), nil
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.ID = projectM.ID
	project.CreatedAt = projectM.CreatedAt

	return nil
}

// Update modifies an existing project.
func (repo *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	result := repo.db.WithContext(ctx).Model(&model.ProjectModel{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"service_id":  projectM.ServiceID,
			"title":       projectM.Title,
			"description": projectM.Description,
			"image_url":   projectM.ImageURL,
			"theme":       projectM.Theme,
			"order_index": projectM.OrderIndex,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

// Delete removes a project row permanently.
func (repo *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProjectModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete project")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProjectNotFound
	}

	return nil
}

func toProjectDomainSlice(projectModels []*model.ProjectModel) []*entity.Project {
	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects
}

func toProjectDomain(projectM *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:          projectM.ID,
		ServiceID:   projectM.ServiceID,
		Title:       projectM.Title,
		Description: projectM.Description,
		ImageURL:    projectM.ImageURL,
		Theme:       projectM.Theme,
		OrderIndex:  projectM.OrderIndex,
		CreatedAt:   projectM.CreatedAt,
	}
}

func fromProjectDomain(project *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:          project.ID,
		ServiceID:   project.ServiceID,
		Title:       project.Title,
		Description: project.Description,
		ImageURL:    project.ImageURL,
		Theme:       project.Theme,
		OrderIndex:  project.OrderIndex,
		CreatedAt:   project.CreatedAt,
	}
}
