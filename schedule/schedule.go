// Package schedule computes concrete closure days from administrator-defined
// rules. Recurring occurrences are never persisted; they are projected onto a
// date window on every read, so the rule row stays the single source of truth.
//
// Weekday convention: 0=Monday .. 6=Sunday, everywhere.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Slot identifies which service period a closure covers.
type Slot string

const (
	SlotAll    Slot = "ALL"
	SlotLunch  Slot = "LUNCH"
	SlotDinner Slot = "DINNER"
)

// Valid reports whether s is one of the known slots.
func (s Slot) Valid() bool {
	return s == SlotAll || s == SlotLunch || s == SlotDinner
}

// Rank orders slots by how much of the day they cover: a full-day closure
// outranks dinner, which outranks lunch. Unknown slots rank lowest.
func (s Slot) Rank() int {
	switch s {
	case SlotAll:
		return 3
	case SlotDinner:
		return 2
	case SlotLunch:
		return 1
	}
	return 0
}

// Kind tags an instance with its origin, used by display precedence.
type Kind string

const (
	KindExceptional Kind = "EXCEPTIONAL"
	KindRecurring   Kind = "RECURRING"
)

// Rule is a weekly recurring closure pattern.
type Rule struct {
	ID            uuid.UUID
	Weekday       int // 0=Monday .. 6=Sunday
	Slot          Slot
	Note          string
	StartsOn      *time.Time // nil = unbounded, clamped to the query window
	EndsOn        *time.Time // nil = unbounded
	IntervalWeeks int        // weeks between occurrences; 0 means 1
}

// Exception is a single-date closure not tied to any recurrence.
type Exception struct {
	ID   uuid.UUID
	Date time.Time
	Slot Slot
	Note string
}

// Instance is one concrete closure day, derived and ephemeral. Recurring
// instances get a synthetic composite ID; exceptional ones keep the row ID.
type Instance struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Slot Slot      `json:"slot"`
	Note string    `json:"note"`
	Kind Kind      `json:"kind"`
}

// DefaultWindowYears bounds the expansion window when the caller gives none.
const DefaultWindowYears = 5

// DefaultWindow returns the window used when a request carries no explicit
// range: today through today plus five years.
func DefaultWindow(now time.Time) (time.Time, time.Time) {
	start := Noon(now)
	return start, start.AddDate(DefaultWindowYears, 0, 0)
}

// Noon normalizes t to 12:00 local time on the same calendar day. Working at
// noon keeps day arithmetic stable across daylight-saving transitions.
func Noon(t time.Time) time.Time {
	return NoonIn(t, t.Location())
}

// NoonIn rebuilds t's calendar day at 12:00 in loc. Dates arrive in mixed
// locations (query params parse in local time, date columns scan back in UTC);
// rebuilding the Y/M/D in one location makes day comparisons calendar-based
// instead of instant-based.
func NoonIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, loc)
}

// DayKey formats t as an ISO calendar date, the map key used for display
// resolution.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// RecurringInstanceID synthesizes the ID for a recurring occurrence. The
// embedded date always equals the instance's own date truncated to the day.
func RecurringInstanceID(ruleID uuid.UUID, day time.Time) string {
	return "rec_" + ruleID.String() + "_" + DayKey(day)
}

// mondayIndexed maps Go's Sunday=0 weekday onto the package's Monday=0 scale.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}
