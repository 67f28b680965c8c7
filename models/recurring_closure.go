package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecurringClosure is a weekly closure pattern. Occurrences are computed on
// read by the schedule package, never stored.
type RecurringClosure struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Weekday       int        `gorm:"not null" json:"weekday"` // 0=Monday .. 6=Sunday
	Slot          string     `gorm:"not null;default:'ALL'" json:"slot"`
	Note          string     `json:"note"`
	StartsOn      *time.Time `gorm:"type:date" json:"starts_on"`
	EndsOn        *time.Time `gorm:"type:date" json:"ends_on"`
	IntervalWeeks int        `gorm:"not null;default:1" json:"interval_weeks"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (r *RecurringClosure) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
