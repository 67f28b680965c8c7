package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessHours holds the regular lunch and dinner service windows for one
// weekday. Exactly one row per weekday; closures override these on specific
// dates.
type BusinessHours struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Weekday     int       `gorm:"not null;uniqueIndex" json:"weekday"` // 0=Monday .. 6=Sunday
	LunchOpen   string    `gorm:"not null;default:'12:00'" json:"lunch_open"`
	LunchClose  string    `gorm:"not null;default:'14:30'" json:"lunch_close"`
	DinnerOpen  string    `gorm:"not null;default:'19:00'" json:"dinner_open"`
	DinnerClose string    `gorm:"not null;default:'22:30'" json:"dinner_close"`
	IsClosed    bool      `gorm:"default:false" json:"is_closed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b *BusinessHours) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
