// Package usecase provides hand-rolled testify mocks for the usecase
// interfaces, used by the HTTP handler tests.
package usecase

import (
	"context"

	"vitrine/internal/domain/entity"
	"vitrine/internal/upload"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockHeroUsecase is a mock implementation of usecase.HeroUsecase.
type MockHeroUsecase struct {
	mock.Mock
}

func (m *MockHeroUsecase) ListHeroImages(ctx context.Context) ([]*entity.HeroImage, error) {
	args := m.Called(ctx)
	if heroes, ok := args.Get(0).([]*entity.HeroImage); ok {
		return heroes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroUsecase) GetHeroImage(ctx context.Context, id uuid.UUID) (*entity.HeroImage, error) {
	args := m.Called(ctx, id)
	if hero, ok := args.Get(0).(*entity.HeroImage); ok {
		return hero, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroUsecase) CreateHeroImage(ctx context.Context, input *usecase.CreateHeroImageInput) (*entity.HeroImage, error) {
	args := m.Called(ctx, input)
	if hero, ok := args.Get(0).(*entity.HeroImage); ok {
		return hero, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroUsecase) CreateHeroImages(ctx context.Context, inputs []*usecase.CreateHeroImageInput) ([]*entity.HeroImage, error) {
	args := m.Called(ctx, inputs)
	if heroes, ok := args.Get(0).([]*entity.HeroImage); ok {
		return heroes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroUsecase) UpdateHeroImage(ctx context.Context, id uuid.UUID, input *usecase.UpdateHeroImageInput) (*entity.HeroImage, error) {
	args := m.Called(ctx, id, input)
	if hero, ok := args.Get(0).(*entity.HeroImage); ok {
		return hero, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockHeroUsecase) DeleteHeroImage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockUploadUsecase is a mock implementation of usecase.UploadUsecase.
type MockUploadUsecase struct {
	mock.Mock
}

func (m *MockUploadUsecase) UploadImages(ctx context.Context, input *usecase.UploadImagesInput) ([]upload.Result, error) {
	args := m.Called(ctx, input)
	if results, ok := args.Get(0).([]upload.Result); ok {
		return results, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUploadUsecase) DeleteImage(ctx context.Context, publicURL string) error {
	args := m.Called(ctx, publicURL)

	return args.Error(0)
}
