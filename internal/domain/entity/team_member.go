package entity

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember is a person shown on the team page.
type TeamMember struct {
	ID          uuid.UUID
	Name        string
	Position    string // Required.
	Description string
	PhotoURL    string
	OrderIndex  int
	CreatedAt   time.Time
}
