package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTestimonialRating is applied when a testimonial is created without
// an explicit rating.
const DefaultTestimonialRating = 5

// Testimonial is a client quote with an optional 1-5 star rating.
type Testimonial struct {
	ID          uuid.UUID
	AuthorName  string
	Title       string
	Description string // Required; the quote body.
	Position    string
	PhotoURL    string
	Rating      int // 1..5, defaults to DefaultTestimonialRating.
	OrderIndex  int
	CreatedAt   time.Time
}
