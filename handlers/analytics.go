package handlers

import (
	"net/http"
	"strconv"
	"time"

	"osteria-backend/analytics"
	"osteria-backend/metrics"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	Tracker *analytics.Tracker
}

// TrackEvent records a public page view. It always answers 202 so the
// frontend beacon cannot distinguish tracked, filtered and failed events.
func (h *AnalyticsHandler) TrackEvent(c *gin.Context) {
	var req struct {
		Path     string `json:"path" binding:"required,max=512"`
		Referrer string `json:"referrer" binding:"omitempty,max=512"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncPageView("invalid")
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
		return
	}

	tracked, err := h.Tracker.Record(
		req.Path,
		req.Referrer,
		c.ClientIP(),
		c.GetHeader("User-Agent"),
		time.Now(),
	)
	switch {
	case err != nil:
		metrics.IncPageView("error")
	case tracked:
		metrics.IncPageView("tracked")
	default:
		metrics.IncPageView("bot")
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// GetSummary returns the aggregated analytics for the admin dashboard.
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			days = parsed
		}
	}
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	summary, err := h.Tracker.Summarize(time.Now(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build analytics summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
