// Package analytics implements first-party, cookieless page-view tracking:
// bot filtering, salted visitor hashing, and zero-filled daily aggregation.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"regexp"
	"time"

	"osteria-backend/models"

	"gorm.io/gorm"
)

// visitorHashLen truncates the hex digest; 16 chars is plenty for a site
// this size and keeps the column small.
const visitorHashLen = 16

var botPattern = regexp.MustCompile(`(?i)bot|crawl|spider|slurp|scrape|curl|wget|python-requests|go-http-client|headless|phantom|lighthouse|pingdom|uptime|monitor|facebookexternalhit|preview|feedfetcher`)

// IsBot reports whether the user agent looks automated. An empty user agent
// is treated as a bot: real browsers always send one.
func IsBot(userAgent string) bool {
	if userAgent == "" {
		return true
	}
	return botPattern.MatchString(userAgent)
}

// Tracker records page views and aggregates them for the admin dashboard.
type Tracker struct {
	DB     *gorm.DB
	secret string
}

// NewTracker reads the hash secret from ANALYTICS_HASH_SECRET. Without one a
// random ephemeral secret is generated, which still works but resets visitor
// identity on every restart.
func NewTracker(db *gorm.DB) *Tracker {
	secret := os.Getenv("ANALYTICS_HASH_SECRET")
	if secret == "" {
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		secret = hex.EncodeToString(buf)
	}
	return &Tracker{DB: db, secret: secret}
}

// VisitorHash derives a pseudonymous visitor identity from the client IP and
// user agent. The digest is salted with the secret plus the calendar day, so
// the same visitor gets a fresh identity each day and the raw IP is neither
// stored nor recoverable.
func (t *Tracker) VisitorHash(ip, userAgent string, day time.Time) string {
	sum := sha256.Sum256([]byte(t.secret + "|" + day.Format("2006-01-02") + "|" + ip + "|" + userAgent))
	return hex.EncodeToString(sum[:])[:visitorHashLen]
}

// Record stores one page view unless the user agent is filtered as a bot.
// Returns whether the event was stored.
func (t *Tracker) Record(path, referrer, ip, userAgent string, now time.Time) (bool, error) {
	if IsBot(userAgent) {
		return false, nil
	}

	event := models.AnalyticsEvent{
		Path:        path,
		Referrer:    referrer,
		VisitorHash: t.VisitorHash(ip, userAgent, now),
		CreatedAt:   now,
	}
	if err := t.DB.Create(&event).Error; err != nil {
		return false, err
	}
	return true, nil
}
