package handlers

import (
	"net/http"

	"osteria-backend/models"
	"osteria-backend/storage"
	"osteria-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MediaHandler struct {
	DB      *gorm.DB
	Storage storage.Client
}

func (h *MediaHandler) ListMedia(c *gin.Context) {
	var items []models.MediaItem
	if err := h.DB.Order("created_at desc").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch media"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	// Validate file upload (content type + size)
	if err := utils.ValidateFileUpload(fileHeader); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	url, objectPath, err := h.Storage.UploadMedia(
		file,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	item := models.MediaItem{
		ID:          uuid.New(),
		URL:         url,
		ObjectPath:  objectPath,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}

	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save media record"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id := c.Param("id")

	var item models.MediaItem
	if err := h.DB.Where("id = ?", id).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found"})
		return
	}

	// Media referenced by the gallery must be detached first.
	var galleryCount int64
	if err := h.DB.Model(&models.GalleryImage{}).Where("media_id = ?", id).Count(&galleryCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check media dependencies"})
		return
	}

	if galleryCount > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":         "Cannot delete media used in the gallery",
			"message":       "Please remove the gallery entries first",
			"gallery_count": galleryCount,
		})
		return
	}

	// Best-effort storage cleanup; the row is removed regardless.
	_ = h.Storage.DeleteObject(item.ObjectPath)

	if err := h.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete media"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}
