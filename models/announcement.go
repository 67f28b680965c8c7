package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Announcement struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Body        string         `json:"body"`
	ImageURL    string         `json:"image_url"`
	IsPublished bool           `gorm:"default:false" json:"is_published"`
	StartsAt    *time.Time     `json:"starts_at"` // nil = visible immediately once published
	EndsAt      *time.Time     `json:"ends_at"`   // nil = never expires
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
