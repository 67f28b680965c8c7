package database

import (
	"time"

	"osteria-backend/models"

	"gorm.io/gorm"
)

// PurgeExpiredRefreshTokens removes refresh tokens that are expired or were
// revoked more than a day ago. Runs from the nightly maintenance job.
func PurgeExpiredRefreshTokens(db *gorm.DB, now time.Time) (int64, error) {
	cutoff := now.Add(-24 * time.Hour)
	result := db.
		Where("expires_at < ?", now).
		Or("revoked_at IS NOT NULL AND revoked_at < ?", cutoff).
		Delete(&models.RefreshToken{})
	return result.RowsAffected, result.Error
}
