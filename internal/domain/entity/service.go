package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service is one entry of the studio's service catalog ("branding",
// "photography", ...). Titles are stored lowercase and must be unique
// across the catalog; uniqueness is enforced by the usecase layer with a
// pre-check query, not by a database constraint.
type Service struct {
	ID          uuid.UUID
	Title       string // Always lowercase. Required.
	Description string // Required.
	ImageURL    string // Optional cover image.
	OrderIndex  int
	CreatedAt   time.Time
}

// NormalizeTitle returns the canonical stored form of a service title.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// IsPhotoKind reports whether the service unlocks gallery mode for its
// projects: multi-image upload and the free-text theme tag.
func (s *Service) IsPhotoKind() bool {
	return strings.Contains(strings.ToLower(s.Title), "photo")
}
