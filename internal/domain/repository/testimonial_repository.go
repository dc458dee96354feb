package repository

import (
	"context"
	"errors"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTestimonialNotFound is returned when a testimonial row does not exist.
var ErrTestimonialNotFound = errors.New("testimonial not found")

// TestimonialRepository defines persistence operations for testimonials.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*entity.Testimonial, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	Create(ctx context.Context, testimonial *entity.Testimonial) error
	Update(ctx context.Context, testimonial *entity.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
}
