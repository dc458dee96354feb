package usecase

import (
	"context"

	"vitrine/internal/domain/entity"

	"github.com/google/uuid"
)

// TestimonialUsecase defines the business operations for client testimonials.
type TestimonialUsecase interface {
	ListTestimonials(ctx context.Context) ([]*entity.Testimonial, error)
	GetTestimonial(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error)
	CreateTestimonial(ctx context.Context, input *CreateTestimonialInput) (*entity.Testimonial, error)
	UpdateTestimonial(ctx context.Context, id uuid.UUID, input *UpdateTestimonialInput) (*entity.Testimonial, error)
	DeleteTestimonial(ctx context.Context, id uuid.UUID) error
}

// --- Input DTOs ---

// CreateTestimonialInput defines the data required to create a testimonial.
// A zero Rating falls back to the default of five stars.
type CreateTestimonialInput struct {
	AuthorName  string `json:"author_name"`
	Title       string `json:"title"`
	Description string `json:"description" validate:"required"`
	Position    string `json:"position"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Rating      int    `json:"rating" validate:"omitempty,min=1,max=5"`
	OrderIndex  int    `json:"order_index"`
}

// UpdateTestimonialInput defines the data required to update a testimonial.
// Nil fields are left untouched.
type UpdateTestimonialInput struct {
	AuthorName  *string `json:"author_name,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Position    *string `json:"position,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	OrderIndex  *int    `json:"order_index,omitempty"`
}
