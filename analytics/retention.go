package analytics

import (
	"time"

	"osteria-backend/models"
)

// DefaultRetentionDays bounds how long raw events are kept. Aggregates are
// always recomputed from raw rows, so the retention window also bounds the
// dashboard's lookback.
const DefaultRetentionDays = 90

// Purge deletes events older than retentionDays. Returns the number of rows
// removed.
func (t *Tracker) Purge(now time.Time, retentionDays int) (int64, error) {
	if retentionDays < 1 {
		retentionDays = DefaultRetentionDays
	}

	cutoff := startOfDay(now).AddDate(0, 0, -retentionDays)
	result := t.DB.Where("created_at < ?", cutoff).Delete(&models.AnalyticsEvent{})
	return result.RowsAffected, result.Error
}
