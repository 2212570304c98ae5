package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/models"
	"github.com/factorypro/site_backend/internal/storage"
)

// ImageController manages the standalone gallery. Images attached to blog
// posts are written through the blog controller; they still show up here.
type ImageController struct {
	DB    *gorm.DB
	Store storage.Storage
}

type createImageRequest struct {
	URL         string `json:"url" binding:"required"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateImageRequest struct {
	URL         *string `json:"url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (ic *ImageController) List(c *gin.Context) {
	var images []models.Image
	if err := ic.DB.Order("created_at DESC").Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch images"})
		return
	}
	c.JSON(http.StatusOK, images)
}

func (ic *ImageController) Create(c *gin.Context) {
	var req createImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image := models.Image{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Description,
		Date:        time.Now().UTC(),
	}
	if err := ic.DB.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create image"})
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (ic *ImageController) Get(c *gin.Context) {
	var image models.Image
	if err := ic.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	c.JSON(http.StatusOK, image)
}

func (ic *ImageController) Update(c *gin.Context) {
	var image models.Image
	if err := ic.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	var req updateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL != nil {
		image.URL = *req.URL
	}
	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}

	if err := ic.DB.Save(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update image"})
		return
	}
	c.JSON(http.StatusOK, image)
}

// Delete removes the row and best-effort unlinks the file when it lives in
// local upload storage. Unlink failures never fail the request.
func (ic *ImageController) Delete(c *gin.Context) {
	var image models.Image
	if err := ic.DB.Where("id = ?", c.Param("id")).First(&image).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}
	if err := ic.DB.Delete(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if err := ic.Store.Remove(image.URL); err != nil {
		log.Warn().Err(err).Str("url", image.URL).Msg("failed to unlink image file")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
