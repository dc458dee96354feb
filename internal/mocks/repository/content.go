// Package repository contains testify doubles for the persistence
// interfaces, used by usecase tests.
package repository

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHeroImageRepository is a testify double for repository.HeroImageRepository.
type MockHeroImageRepository struct {
	mock.Mock
}

func (m *MockHeroImageRepository) List(ctx context.Context) ([]*entity.HeroImage, error) {
	args := m.Called(ctx)
	if heroes, ok := args.Get(0).([]*entity.HeroImage); ok {
		return heroes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	args := m.Called(ctx, id)
	if hero, ok := args.Get(0).(*entity.HeroImage); ok {
		return hero, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroImageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHeroImageRepository) Create(ctx context.Context, hero *entity.HeroImage) error {
	args := m.Called(ctx, hero)

	return args.Error(0)
}

func (m *MockHeroImageRepository) Update(ctx context.Context, hero *entity.HeroImage) error {
	args := m.Called(ctx, hero)

	return args.Error(0)
}

func (m *MockHeroImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockServiceRepository is a testify double for repository.ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	args := m.Called(ctx)
	if services, ok := args.Get(0).([]*entity.Service); ok {
		return services, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if svc, ok := args.Get(0).(*entity.Service); ok {
		return svc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) FindByTitle(ctx context.Context, title string) (*entity.Service, error) {
	args := m.Called(ctx, title)
	if svc, ok := args.Get(0).(*entity.Service); ok {
		return svc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockServiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)

	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	args := m.Called(ctx, service)

	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockProjectRepository is a testify double for repository.ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	args := m.Called(ctx)
	if projects, ok := args.Get(0).([]*entity.Project); ok {
		return projects, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProjectRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Project, error) {
	args := m.Called(ctx, serviceID)
	if projects, ok := args.Get(0).([]*entity.Project); ok {
		return projects, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProjectRepository) ListThemes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if themes, ok := args.Get(0).([]string); ok {
		return themes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	args := m.Called(ctx, id)
	if project, ok := args.Get(0).(*entity.Project); ok {
		return project, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)

	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)

	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockTeamMemberRepository is a testify double for repository.TeamMemberRepository.
type MockTeamMemberRepository struct {
	mock.Mock
}

func (m *MockTeamMemberRepository) List(ctx context.Context) ([]*entity.TeamMember, error) {
	args := m.Called(ctx)
	if members, ok := args.Get(0).([]*entity.TeamMember); ok {
		return members, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTeamMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	args := m.Called(ctx, id)
	if member, ok := args.Get(0).(*entity.TeamMember); ok {
		return member, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTeamMemberRepository) Create(ctx context.Context, member *entity.TeamMember) error {
	args := m.Called(ctx, member)

	return args.Error(0)
}

func (m *MockTeamMemberRepository) Update(ctx context.Context, member *entity.TeamMember) error {
	args := m.Called(ctx, member)

	return args.Error(0)
}

func (m *MockTeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockTestimonialRepository is a testify double for repository.TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) List(ctx context.Context) ([]*entity.Testimonial, error) {
	args := m.Called(ctx)
	if testimonials, ok := args.Get(0).([]*entity.Testimonial); ok {
		return testimonials, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	args := m.Called(ctx, id)
	if testimonial, ok := args.Get(0).(*entity.Testimonial); ok {
		return testimonial, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTestimonialRepository) Create(ctx context.Context, testimonial *entity.Testimonial) error {
	args := m.Called(ctx, testimonial)

	return args.Error(0)
}

func (m *MockTestimonialRepository) Update(ctx context.Context, testimonial *entity.Testimonial) error {
	args := m.Called(ctx, testimonial)

	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
