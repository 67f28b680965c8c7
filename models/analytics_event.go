package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsEvent is one tracked page view. VisitorHash is a salted digest of
// the client IP and user agent; the raw IP is never stored.
type AnalyticsEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Path        string    `gorm:"not null;index" json:"path"`
	Referrer    string    `json:"referrer"`
	VisitorHash string    `gorm:"not null;index" json:"visitor_hash"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
