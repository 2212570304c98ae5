package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/models"
)

const placeholderAvatarURL = "/placeholder.svg?height=50&width=50"

type TestimonialController struct {
	DB *gorm.DB
}

type createTestimonialRequest struct {
	Content     string `json:"content" binding:"required"`
	FullContent string `json:"fullContent"`
	Author      string `json:"author" binding:"required"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	AvatarURL   string `json:"avatarUrl"`
}

type updateTestimonialRequest struct {
	Content     *string `json:"content"`
	FullContent *string `json:"fullContent"`
	Author      *string `json:"author"`
	Position    *string `json:"position"`
	Company     *string `json:"company"`
	Rating      *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	AvatarURL   *string `json:"avatarUrl"`
}

func (tc *TestimonialController) List(c *gin.Context) {
	var testimonials []models.Testimonial
	if err := tc.DB.Order("created_at DESC").Find(&testimonials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch testimonials"})
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

func (tc *TestimonialController) Create(c *gin.Context) {
	var req createTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.FullContent == "" {
		req.FullContent = req.Content
	}
	if req.AvatarURL == "" {
		req.AvatarURL = placeholderAvatarURL
	}

	testimonial := models.Testimonial{
		Content:     req.Content,
		FullContent: req.FullContent,
		Author:      req.Author,
		Position:    req.Position,
		Company:     req.Company,
		Rating:      req.Rating,
		AvatarURL:   req.AvatarURL,
	}
	if err := tc.DB.Create(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create testimonial"})
		return
	}
	c.JSON(http.StatusCreated, testimonial)
}

func (tc *TestimonialController) Get(c *gin.Context) {
	var testimonial models.Testimonial
	if err := tc.DB.Where("id = ?", c.Param("id")).First(&testimonial).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (tc *TestimonialController) Update(c *gin.Context) {
	var testimonial models.Testimonial
	if err := tc.DB.Where("id = ?", c.Param("id")).First(&testimonial).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var req updateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Content != nil {
		testimonial.Content = *req.Content
	}
	if req.FullContent != nil {
		testimonial.FullContent = *req.FullContent
	}
	if req.Author != nil {
		testimonial.Author = *req.Author
	}
	if req.Position != nil {
		testimonial.Position = *req.Position
	}
	if req.Company != nil {
		testimonial.Company = *req.Company
	}
	if req.Rating != nil {
		testimonial.Rating = *req.Rating
	}
	if req.AvatarURL != nil {
		testimonial.AvatarURL = *req.AvatarURL
	}

	if err := tc.DB.Save(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update testimonial"})
		return
	}
	c.JSON(http.StatusOK, testimonial)
}

func (tc *TestimonialController) Delete(c *gin.Context) {
	var testimonial models.Testimonial
	if err := tc.DB.Where("id = ?", c.Param("id")).First(&testimonial).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	if err := tc.DB.Delete(&testimonial).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete testimonial"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
