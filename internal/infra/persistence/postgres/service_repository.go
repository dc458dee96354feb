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

// serviceRepository implements the domain.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

// List retrieves all services ordered by order_index.
func (repo *serviceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel
	if err := repo.db.WithContext(ctx).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// FindByID retrieves a single service by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).First(&serviceM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toServiceDomain(&serviceM), nil
}

// FindByTitle retrieves a service by its normalized (lowercase) title.
// Callers must normalize before querying; titles are stored lowercase.
func (repo *serviceRepository) FindByTitle(ctx context.Context, title string) (*entity.Service, error) {
	var serviceM model.ServiceModel
	if err := repo.db.WithContext(ctx).First(&serviceM, "title = ?", title).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toServiceDomain(&serviceM), nil
}

// Count returns the number of service rows.
func (repo *serviceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ServiceModel{}).Count(&count).Error; err != nil {
		return 0, errors.WithStack(err)
	}

	return count, nil
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required service fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt

	return nil
}

// Update modifies an existing service.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	result := repo.db.WithContext(ctx).Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]any{
			"title":       serviceM.Title,
			"description": serviceM.Description,
			"image_url":   serviceM.ImageURL,
			"order_index": serviceM.OrderIndex,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a service row permanently. Projects referencing the service
// stay in place: the reference is non-cascading.
func (repo *serviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ServiceModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func toServiceDomain(serviceM *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:          serviceM.ID,
		Title:       serviceM.Title,
		Description: serviceM.Description,
		ImageURL:    serviceM.ImageURL,
		OrderIndex:  serviceM.OrderIndex,
		CreatedAt:   serviceM.CreatedAt,
	}
}

func fromServiceDomain(service *entity.Service) *model.ServiceModel {
	return &model.ServiceModel{
		ID:          service.ID,
		Title:       service.Title,
		Description: service.Description,
		ImageURL:    service.ImageURL,
		OrderIndex:  service.OrderIndex,
		CreatedAt:   service.CreatedAt,
	}
}
