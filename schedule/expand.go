package schedule

import (
	"sort"
	"time"
)

// Expand projects recurring rules onto [windowStart, windowEnd] and merges the
// result with the one-off exceptions falling inside the window.
//
// The returned list is stable-sorted ascending by calendar day. When an
// exceptional closure and a recurring occurrence land on the same day both are
// kept; picking the one to display is ResolveForDisplay's job.
//
// Time-of-day and location on the inputs are ignored: every date is rebuilt
// as a calendar day in the window's location before comparing, so a UTC date
// row and a local-time window agree on day membership. An inverted window
// yields an empty list. Rules with a weekday outside 0..6 contribute nothing;
// the API boundary rejects such rows before they are ever stored.
func Expand(rules []Rule, exceptions []Exception, windowStart, windowEnd time.Time) []Instance {
	loc := windowStart.Location()
	windowStart = Noon(windowStart)
	windowEnd = NoonIn(windowEnd, loc)

	out := []Instance{}
	if windowStart.After(windowEnd) {
		return out
	}

	for _, e := range exceptions {
		day := NoonIn(e.Date, loc)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		out = append(out, Instance{
			ID:   e.ID.String(),
			Date: day,
			Slot: e.Slot,
			Note: e.Note,
			Kind: KindExceptional,
		})
	}

	for _, r := range rules {
		out = append(out, expandRule(r, windowStart, windowEnd)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func expandRule(r Rule, windowStart, windowEnd time.Time) []Instance {
	if r.Weekday < 0 || r.Weekday > 6 {
		return nil
	}

	interval := r.IntervalWeeks
	if interval < 1 {
		interval = 1
	}

	// Clamp the rule's own bounds to the window, in the window's location.
	loc := windowStart.Location()
	effStart := windowStart
	if r.StartsOn != nil {
		if s := NoonIn(*r.StartsOn, loc); s.After(effStart) {
			effStart = s
		}
	}
	effEnd := windowEnd
	if r.EndsOn != nil {
		if e := NoonIn(*r.EndsOn, loc); e.Before(effEnd) {
			effEnd = e
		}
	}
	if effStart.After(effEnd) {
		return nil
	}

	// First occurrence on or after effStart matching the rule's weekday;
	// always lands within effStart..effStart+6.
	delta := (r.Weekday - mondayIndexed(effStart.Weekday()) + 7) % 7
	cur := effStart.AddDate(0, 0, delta)

	var instances []Instance
	for !cur.After(effEnd) {
		instances = append(instances, Instance{
			ID:   RecurringInstanceID(r.ID, cur),
			Date: cur,
			Slot: r.Slot,
			Note: r.Note,
			Kind: KindRecurring,
		})
		cur = cur.AddDate(0, 0, 7*interval)
	}
	return instances
}
