package handlers

import (
	"net/http"

	"osteria-backend/models"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GalleryHandler struct {
	DB *gorm.DB
}

// GetGallery is the public gallery listing, ordered for display.
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.DB.Preload("Media").Order("position asc, created_at asc").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	c.JSON(http.StatusOK, images)
}

func (h *GalleryHandler) CreateGalleryImage(c *gin.Context) {
	var req struct {
		MediaID  string `json:"media_id" binding:"required,uuid"`
		Caption  string `json:"caption"`
		Position *int   `json:"position"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	mediaID, err := uuid.Parse(req.MediaID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid media ID"})
		return
	}

	var media models.MediaItem
	if err := h.DB.Where("id = ?", mediaID).First(&media).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		// Append to the end when no position is given.
		var maxPos struct{ Max int }
		h.DB.Model(&models.GalleryImage{}).Select("COALESCE(MAX(position), -1) as max").Scan(&maxPos)
		position = maxPos.Max + 1
	}

	image := models.GalleryImage{
		ID:       uuid.New(),
		MediaID:  mediaID,
		Caption:  req.Caption,
		Position: position,
	}

	if err := h.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gallery image"})
		return
	}

	h.DB.Preload("Media").First(&image, "id = ?", image.ID)
	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) UpdateGalleryImage(c *gin.Context) {
	id := c.Param("id")

	var image models.GalleryImage
	if err := h.DB.Where("id = ?", id).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	var req struct {
		Caption  *string `json:"caption"`
		Position *int    `json:"position"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.Caption != nil {
		image.Caption = *req.Caption
	}
	if req.Position != nil {
		image.Position = *req.Position
	}

	if err := h.DB.Save(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update gallery image"})
		return
	}

	h.DB.Preload("Media").First(&image, "id = ?", image.ID)
	c.JSON(http.StatusOK, image)
}

func (h *GalleryHandler) DeleteGalleryImage(c *gin.Context) {
	id := c.Param("id")

	var image models.GalleryImage
	if err := h.DB.Where("id = ?", id).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gallery image not found"})
		return
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gallery image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Gallery image deleted successfully"})
}

// ReorderGallery rewrites positions to match the order of the submitted IDs.
func (h *GalleryHandler) ReorderGallery(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for i, rawID := range req.IDs {
			result := tx.Model(&models.GalleryImage{}).
				Where("id = ?", rawID).
				Update("position", i)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "One or more gallery images not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder gallery"})
		return
	}

	var images []models.GalleryImage
	if err := h.DB.Preload("Media").Order("position asc").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gallery"})
		return
	}

	c.JSON(http.StatusOK, images)
}
