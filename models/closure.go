package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Closure is a one-off exceptional closure on a single date. Unique per
// (date, slot).
type Closure struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_closures_date_slot" json:"date"`
	Slot      string    `gorm:"not null;default:'ALL';uniqueIndex:idx_closures_date_slot" json:"slot"` // ALL, LUNCH, DINNER
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Closure) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
