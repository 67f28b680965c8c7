package schedule

// ResolveForDisplay reduces a merged instance list to at most one entry per
// calendar day, keyed by ISO date. Calendars render this map directly instead
// of re-implementing the ranking client-side.
//
// Precedence per day: an exceptional closure beats a recurring one; between
// equal kinds the broader slot wins (ALL > DINNER > LUNCH); remaining ties
// keep the first-seen entry.
func ResolveForDisplay(instances []Instance) map[string]Instance {
	resolved := make(map[string]Instance, len(instances))
	for _, inst := range instances {
		key := DayKey(inst.Date)
		current, ok := resolved[key]
		if !ok || outranks(inst, current) {
			resolved[key] = inst
		}
	}
	return resolved
}

// outranks reports whether candidate should displace current for the same day.
// Strict comparison keeps the reduction stable on full ties.
func outranks(candidate, current Instance) bool {
	if candidate.Kind != current.Kind {
		return candidate.Kind == KindExceptional
	}
	return candidate.Slot.Rank() > current.Slot.Rank()
}
