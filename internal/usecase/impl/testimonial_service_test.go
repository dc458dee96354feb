package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"vitrine/internal/domain/entity"
	domainerrors "vitrine/internal/domain/errors"
	mockRepo "vitrine/internal/mocks/repository"
	mockService "vitrine/internal/mocks/service"
	"vitrine/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTestimonialService(t *testing.T) (usecase.TestimonialUsecase, *mockRepo.MockTestimonialRepository) {
	t.Helper()

	testimonialRepo := new(mockRepo.MockTestimonialRepository)
	blobStore := new(mockService.MockBlobStore)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTestimonialService(testimonialRepo, blobStore, logger), testimonialRepo
}

func TestTestimonialService_CreateTestimonial_DefaultRating(t *testing.T) {
	service, repo := createTestTestimonialService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(tm *entity.Testimonial) bool {
		return tm.Rating == entity.DefaultTestimonialRating
	})).Return(nil)

	testimonial, err := service.CreateTestimonial(ctx, &usecase.CreateTestimonialInput{
		AuthorName:  "A. Client",
		Description: "great work",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTestimonialRating, testimonial.Rating)
}

func TestTestimonialService_CreateTestimonial_RatingOutOfRange(t *testing.T) {
	service, repo := createTestTestimonialService(t)

	_, err := service.CreateTestimonial(context.Background(), &usecase.CreateTestimonialInput{
		AuthorName:  "A. Client",
		Description: "great work",
		Rating:      6,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Create")
}
