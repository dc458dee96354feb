package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio piece belonging to a Service. The reference is
// deliberately not enforced by a foreign key: deleting a Service leaves its
// Projects orphaned, and listing code is expected to tolerate that.
type Project struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID // References Service.ID. Required, non-cascading.
	Title       string
	Description string
	ImageURL    string // Single URL, or a comma-joined gallery (see ImageList).
	Theme       string // Free-text tag; only meaningful under a photo-kind service.
	OrderIndex  int
	CreatedAt   time.Time
}

// Images returns the decoded gallery of the project.
func (p *Project) Images() []string {
	return ParseImageList(p.ImageURL)
}
