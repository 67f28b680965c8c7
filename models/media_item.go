package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaItem is one uploaded file in cloud storage. ObjectPath is kept so the
// object can be deleted without parsing the public URL.
type MediaItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	URL         string         `gorm:"not null" json:"url"`
	ObjectPath  string         `gorm:"not null" json:"object_path"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"content_type"`
	Size        int64          `json:"size"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *MediaItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
