package handlers

import (
	"net/http"
	"time"

	"osteria-backend/models"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementHandler struct {
	DB *gorm.DB
}

// GetAnnouncements returns published announcements whose display window
// covers now, newest first.
func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {
	now := time.Now()

	var announcements []models.Announcement
	err := h.DB.
		Where("is_published = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("created_at desc").
		Find(&announcements).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// ListAnnouncements returns every announcement, drafts included, for the
// admin UI.
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	var announcements []models.Announcement
	if err := h.DB.Order("created_at desc").Find(&announcements).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements"})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

type announcementRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Body        string     `json:"body"`
	ImageURL    string     `json:"image_url"`
	IsPublished bool       `json:"is_published"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.StartsAt.After(*req.EndsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starts_at must not be after ends_at"})
		return
	}

	announcement := models.Announcement{
		ID:          uuid.New(),
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
	}

	if err := h.DB.Create(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id := c.Param("id")

	var announcement models.Announcement
	if err := h.DB.Where("id = ?", id).First(&announcement).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	var req announcementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.StartsAt != nil && req.EndsAt != nil && req.StartsAt.After(*req.EndsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "starts_at must not be after ends_at"})
		return
	}

	announcement.Title = req.Title
	announcement.Body = req.Body
	announcement.ImageURL = req.ImageURL
	announcement.IsPublished = req.IsPublished
	announcement.StartsAt = req.StartsAt
	announcement.EndsAt = req.EndsAt

	if err := h.DB.Save(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement"})
		return
	}

	// Save skips zero-value bools on some drivers; make unpublish explicit.
	h.DB.Model(&announcement).Update("is_published", req.IsPublished)

	c.JSON(http.StatusOK, announcement)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id := c.Param("id")

	var announcement models.Announcement
	if err := h.DB.Where("id = ?", id).First(&announcement).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	if err := h.DB.Delete(&announcement).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
