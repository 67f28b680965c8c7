package handlers

import (
	"net/http"

	"osteria-backend/models"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HoursHandler struct {
	DB *gorm.DB
}

// GetHours returns the weekly opening hours ordered Monday first (weekday 0).
func (h *HoursHandler) GetHours(c *gin.Context) {
	var hours []models.BusinessHours
	if err := h.DB.Order("weekday asc").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch business hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

type businessHoursRequest struct {
	Weekday     *int   `json:"weekday" binding:"required,min=0,max=6"` // 0=Monday .. 6=Sunday
	LunchOpen   string `json:"lunch_open" binding:"required,datetime=15:04"`
	LunchClose  string `json:"lunch_close" binding:"required,datetime=15:04"`
	DinnerOpen  string `json:"dinner_open" binding:"required,datetime=15:04"`
	DinnerClose string `json:"dinner_close" binding:"required,datetime=15:04"`
	IsClosed    bool   `json:"is_closed"`
}

// UpdateHours replaces the whole weekly grid in one call: exactly seven
// entries, one per weekday.
func (h *HoursHandler) UpdateHours(c *gin.Context) {
	var req []businessHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if len(req) != 7 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Expected exactly 7 entries, one per weekday"})
		return
	}

	seen := make(map[int]bool, 7)
	for _, entry := range req {
		if seen[*entry.Weekday] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Duplicate weekday in request"})
			return
		}
		seen[*entry.Weekday] = true
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, entry := range req {
			updates := map[string]interface{}{
				"lunch_open":   entry.LunchOpen,
				"lunch_close":  entry.LunchClose,
				"dinner_open":  entry.DinnerOpen,
				"dinner_close": entry.DinnerClose,
				"is_closed":    entry.IsClosed,
			}

			var existing models.BusinessHours
			if err := tx.Where("weekday = ?", *entry.Weekday).First(&existing).Error; err == nil {
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return err
				}
				continue
			}

			row := models.BusinessHours{
				Weekday:     *entry.Weekday,
				LunchOpen:   entry.LunchOpen,
				LunchClose:  entry.LunchClose,
				DinnerOpen:  entry.DinnerOpen,
				DinnerClose: entry.DinnerClose,
				IsClosed:    entry.IsClosed,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business hours"})
		return
	}

	var hours []models.BusinessHours
	if err := h.DB.Order("weekday asc").Find(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch business hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}
