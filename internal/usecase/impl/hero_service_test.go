package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitrine/config"
	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	"vitrine/internal/domain/repository"
	mockRepo "vitrine/internal/mocks/repository"
	mockService "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type heroServiceFixtures struct {
	service   usecase.HeroUsecase
	heroRepo  *mockRepo.MockHeroImageRepository
	blobStore *mockService.MockBlobStore
}

func createTestHeroService(t *testing.T) heroServiceFixtures {
	t.Helper()

	heroRepo := new(mockRepo.MockHeroImageRepository)
	blobStore := new(mockService.MockBlobStore)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return heroServiceFixtures{
		service:   NewHeroService(heroRepo, blobStore, logger, &config.Config{}),
		heroRepo:  heroRepo,
		blobStore: blobStore,
	}
}

func TestHeroService_ListHeroImages(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	expected := []*entity.HeroImage{
		{ID: uuid.New(), OrderIndex: 1},
		{ID: uuid.New(), OrderIndex: 2},
	}
	fx.heroRepo.On("List", ctx).Return(expected, nil)

	heroes, err := fx.service.ListHeroImages(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, heroes)
}

func TestHeroService_CreateHeroImage_CarouselFull(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	fx.heroRepo.On("Count", ctx).Return(int64(8), nil)

	_, err := fx.service.CreateHeroImage(ctx, &usecase.CreateHeroImageInput{
		ImageURL: "https://cdn.example.com/uploads/1-hero.jpg",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionFull)
	fx.heroRepo.AssertNotCalled(t, "Create")
}

func TestHeroService_CreateHeroImage_Success(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	fx.heroRepo.On("Count", ctx).Return(int64(7), nil)
	fx.heroRepo.On("Create", ctx, mock.MatchedBy(func(hero *entity.HeroImage) bool {
		return hero.ImageURL == "https://cdn.example.com/uploads/1-hero.jpg"
	})).Return(nil)

	hero, err := fx.service.CreateHeroImage(ctx, &usecase.CreateHeroImageInput{
		ImageURL: "https://cdn.example.com/uploads/1-hero.jpg",
		Title:    "welcome",
	})

	require.NoError(t, err)
	assert.Equal(t, "welcome", hero.Title)
}

func TestHeroService_CreateHeroImages_BatchOverflowWritesNothing(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	// Two tiles into seven occupied slots of eight: the batch must fail
	// whole, not leave the first row behind.
	fx.heroRepo.On("Count", ctx).Return(int64(7), nil)

	_, err := fx.service.CreateHeroImages(ctx, []*usecase.CreateHeroImageInput{
		{ImageURL: "https://cdn.example.com/uploads/1-a.jpg"},
		{ImageURL: "https://cdn.example.com/uploads/2-b.jpg"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCollectionFull)
	fx.heroRepo.AssertNotCalled(t, "Create")
}

func TestHeroService_CreateHeroImages_BatchSuccess(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	fx.heroRepo.On("Count", ctx).Return(int64(6), nil)
	fx.heroRepo.On("Create", ctx, mock.AnythingOfType("*entity.HeroImage")).Return(nil)

	heroes, err := fx.service.CreateHeroImages(ctx, []*usecase.CreateHeroImageInput{
		{ImageURL: "https://cdn.example.com/uploads/1-a.jpg"},
		{ImageURL: "https://cdn.example.com/uploads/2-b.jpg"},
	})

	require.NoError(t, err)
	require.Len(t, heroes, 2)
	fx.heroRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestHeroService_UpdateHeroImage_PreservesUntouchedImage(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.HeroImage{
		ID:       id,
		ImageURL: "https://cdn.example.com/uploads/1-hero.jpg",
		Title:    "old title",
	}
	newTitle := "new title"

	fx.heroRepo.On("FindByID", ctx, id).Return(stored, nil)
	fx.heroRepo.On("Update", ctx, mock.MatchedBy(func(hero *entity.HeroImage) bool {
		// An edit without an image keeps the stored image.
		return hero.ImageURL == "https://cdn.example.com/uploads/1-hero.jpg" &&
			hero.Title == newTitle
	})).Return(nil)

	hero, err := fx.service.UpdateHeroImage(ctx, id, &usecase.UpdateHeroImageInput{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/1-hero.jpg", hero.ImageURL)
}

func TestHeroService_DeleteHeroImage_CleanupFailureDoesNotBlock(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	id := uuid.New()
	stored := &entity.HeroImage{ID: id, ImageURL: "https://cdn.example.com/uploads/1-hero.jpg"}

	fx.heroRepo.On("FindByID", ctx, id).Return(stored, nil)
	fx.blobStore.On("OwnsURL", stored.ImageURL).Return(true)
	fx.blobStore.On("DeleteByPublicURL", ctx, stored.ImageURL).Return(errors.New("bucket down"))
	fx.heroRepo.On("Delete", ctx, id).Return(nil)

	err := fx.service.DeleteHeroImage(ctx, id)

	require.NoError(t, err)
	fx.heroRepo.AssertExpectations(t)
}

func TestHeroService_DeleteHeroImage_NotFound(t *testing.T) {
	fx := createTestHeroService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.heroRepo.On("FindByID", ctx, id).Return(nil, repository.ErrHeroImageNotFound)

	err := fx.service.DeleteHeroImage(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	fx.heroRepo.AssertNotCalled(t, "Delete")
}
