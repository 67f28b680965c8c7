package handlers

import (
	"net/http"
	"time"

	"osteria-backend/metrics"
	"osteria-backend/models"
	"osteria-backend/schedule"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClosureHandler struct {
	DB *gorm.DB
}

const isoDate = "2006-01-02"

// GetClosures is the public calendar endpoint. It merges one-off closures
// with expanded recurring rules over the requested window and returns both
// the raw sorted list and the per-day display resolution, so clients never
// reimplement the precedence rule.
//
// Unparseable from/to parameters fall back to the default window (today
// through today plus five years) instead of failing the request.
func (h *ClosureHandler) GetClosures(c *gin.Context) {
	from, to := schedule.DefaultWindow(time.Now())
	if s := c.Query("from"); s != "" {
		if parsed, err := time.ParseInLocation(isoDate, s, time.Local); err == nil {
			from = schedule.Noon(parsed)
		}
	}
	if s := c.Query("to"); s != "" {
		if parsed, err := time.ParseInLocation(isoDate, s, time.Local); err == nil {
			to = schedule.Noon(parsed)
		}
	}

	// Day-boundary fetch; the expander re-clamps at noon granularity.
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, to.Location())

	var closures []models.Closure
	if err := h.DB.Where("date >= ? AND date <= ?", fromDay, toDay).Find(&closures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch closures"})
		return
	}

	var recurring []models.RecurringClosure
	if err := h.DB.Find(&recurring).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recurring closures"})
		return
	}

	instances := schedule.Expand(toRules(recurring), toExceptions(closures), from, to)
	metrics.IncClosureExpansion()

	c.JSON(http.StatusOK, gin.H{
		"closures": instances,
		"display":  schedule.ResolveForDisplay(instances),
	})
}

func toRules(rows []models.RecurringClosure) []schedule.Rule {
	rules := make([]schedule.Rule, len(rows))
	for i, r := range rows {
		rules[i] = schedule.Rule{
			ID:            r.ID,
			Weekday:       r.Weekday,
			Slot:          schedule.Slot(r.Slot),
			Note:          r.Note,
			StartsOn:      r.StartsOn,
			EndsOn:        r.EndsOn,
			IntervalWeeks: r.IntervalWeeks,
		}
	}
	return rules
}

func toExceptions(rows []models.Closure) []schedule.Exception {
	exceptions := make([]schedule.Exception, len(rows))
	for i, e := range rows {
		exceptions[i] = schedule.Exception{
			ID:   e.ID,
			Date: e.Date,
			Slot: schedule.Slot(e.Slot),
			Note: e.Note,
		}
	}
	return exceptions
}

// ListClosures returns the raw one-off closure rows for the admin UI.
func (h *ClosureHandler) ListClosures(c *gin.Context) {
	var closures []models.Closure
	if err := h.DB.Order("date asc").Find(&closures).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch closures"})
		return
	}

	c.JSON(http.StatusOK, closures)
}

func (h *ClosureHandler) CreateClosure(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required,datetime=2006-01-02"`
		Slot string `json:"slot" binding:"required,oneof=ALL LUNCH DINNER"`
		Note string `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	date, _ := time.ParseInLocation(isoDate, req.Date, time.Local)

	var existing models.Closure
	if err := h.DB.Where("date = ? AND slot = ?", date, req.Slot).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A closure for this date and slot already exists"})
		return
	}

	closure := models.Closure{
		ID:   uuid.New(),
		Date: date,
		Slot: req.Slot,
		Note: req.Note,
	}

	if err := h.DB.Create(&closure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create closure"})
		return
	}

	c.JSON(http.StatusCreated, closure)
}

func (h *ClosureHandler) DeleteClosure(c *gin.Context) {
	id := c.Param("id")

	var closure models.Closure
	if err := h.DB.Where("id = ?", id).First(&closure).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Closure not found"})
		return
	}

	if err := h.DB.Delete(&closure).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete closure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Closure deleted successfully"})
}

// ListRecurring returns all recurring closure rules.
func (h *ClosureHandler) ListRecurring(c *gin.Context) {
	var rules []models.RecurringClosure
	if err := h.DB.Order("weekday asc").Find(&rules).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recurring closures"})
		return
	}

	c.JSON(http.StatusOK, rules)
}

type recurringClosureRequest struct {
	Weekday       *int   `json:"weekday" binding:"required,min=0,max=6"` // 0=Monday .. 6=Sunday
	Slot          string `json:"slot" binding:"required,oneof=ALL LUNCH DINNER"`
	Note          string `json:"note"`
	StartsOn      string `json:"starts_on" binding:"omitempty,datetime=2006-01-02"`
	EndsOn        string `json:"ends_on" binding:"omitempty,datetime=2006-01-02"`
	IntervalWeeks int    `json:"interval_weeks" binding:"omitempty,min=1"`
}

func (r *recurringClosureRequest) bounds() (*time.Time, *time.Time, bool) {
	var startsOn, endsOn *time.Time
	if r.StartsOn != "" {
		t, _ := time.ParseInLocation(isoDate, r.StartsOn, time.Local)
		startsOn = &t
	}
	if r.EndsOn != "" {
		t, _ := time.ParseInLocation(isoDate, r.EndsOn, time.Local)
		endsOn = &t
	}
	if startsOn != nil && endsOn != nil && startsOn.After(*endsOn) {
		return nil, nil, false
	}
	return startsOn, endsOn, true
}

func (h *ClosureHandler) CreateRecurring(c *gin.Context) {
	var req recurringClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	startsOn, endsOn, ok := req.bounds()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starts_on must not be after ends_on"})
		return
	}

	interval := req.IntervalWeeks
	if interval < 1 {
		interval = 1
	}

	rule := models.RecurringClosure{
		ID:            uuid.New(),
		Weekday:       *req.Weekday,
		Slot:          req.Slot,
		Note:          req.Note,
		StartsOn:      startsOn,
		EndsOn:        endsOn,
		IntervalWeeks: interval,
	}

	if err := h.DB.Create(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recurring closure"})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func (h *ClosureHandler) UpdateRecurring(c *gin.Context) {
	id := c.Param("id")

	var rule models.RecurringClosure
	if err := h.DB.Where("id = ?", id).First(&rule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring closure not found"})
		return
	}

	var req recurringClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	startsOn, endsOn, ok := req.bounds()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starts_on must not be after ends_on"})
		return
	}

	// Full replacement: omitted bounds clear, omitted interval resets to weekly.
	interval := req.IntervalWeeks
	if interval < 1 {
		interval = 1
	}

	rule.Weekday = *req.Weekday
	rule.Slot = req.Slot
	rule.Note = req.Note
	rule.StartsOn = startsOn
	rule.EndsOn = endsOn
	rule.IntervalWeeks = interval

	if err := h.DB.Save(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recurring closure"})
		return
	}

	c.JSON(http.StatusOK, rule)
}

func (h *ClosureHandler) DeleteRecurring(c *gin.Context) {
	id := c.Param("id")

	var rule models.RecurringClosure
	if err := h.DB.Where("id = ?", id).First(&rule).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recurring closure not found"})
		return
	}

	if err := h.DB.Delete(&rule).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recurring closure"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recurring closure deleted successfully"})
}
