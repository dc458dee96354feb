// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HeroImage is a single tile of the landing-page hero carousel.
type HeroImage struct {
	ID          uuid.UUID // Server-assigned identifier, immutable once created.
	ImageURL    string    // Public URL of the hero image. Required.
	Title       string    // Optional caption shown over the image.
	Description string    // Optional supporting text.
	OrderIndex  int       // Advisory display rank; collisions are tolerated.
	CreatedAt   time.Time // Timestamp of when this row was created.
}
