// Package model defines the GORM table mappings for the public site content
// and the admin accounts behind it.
package model

import (
	"time"

	"github.com/google/uuid"
)

// HeroImageModel mirrors the 'hero_images' table.
type HeroImageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ImageURL    string    `gorm:"type:text;not null"`
	Title       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	OrderIndex  int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (HeroImageModel) TableName() string {
	return "hero_images"
}

// ServiceModel mirrors the 'services' table. Titles are stored lowercase;
// uniqueness is checked by the usecase inside a transaction rather than by a
// database constraint.
type ServiceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title       string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text;not null"`
	ImageURL    string    `gorm:"type:text"`
	OrderIndex  int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// ProjectModel mirrors the 'projects' table. ServiceID carries no foreign
// key on purpose: deleting a service leaves its projects orphaned.
type ProjectModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ServiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"` // Single URL or a comma-joined gallery.
	Theme       string    `gorm:"type:varchar(255)"`
	OrderIndex  int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// TeamMemberModel mirrors the 'team_members' table.
type TeamMemberModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255)"`
	Position    string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	PhotoURL    string    `gorm:"type:text"`
	OrderIndex  int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// TestimonialModel mirrors the 'testimonials' table.
type TestimonialModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AuthorName  string    `gorm:"type:varchar(255)"`
	Title       string    `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text;not null"`
	Position    string    `gorm:"type:varchar(255)"`
	PhotoURL    string    `gorm:"type:text"`
	Rating      int       `gorm:"not null;default:5"`
	OrderIndex  int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TestimonialModel) TableName() string {
	return "testimonials"
}
