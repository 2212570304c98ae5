package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/models"
	"github.com/factorypro/site_backend/internal/ws"
)

type ContactController struct {
	DB    *gorm.DB
	Inbox *ws.InboxHub
}

type createContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company"`
	Position string `json:"position"`
}

type updateContactRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Company  *string `json:"company"`
	Position *string `json:"position"`
	IsRead   *bool   `json:"isRead"`
}

func (cc *ContactController) List(c *gin.Context) {
	var contacts []models.Contact
	if err := cc.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// Create is the public contact-form intake. New submissions are pushed to
// connected admin dashboards.
func (cc *ContactController) Create(c *gin.Context) {
	var req createContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := models.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Company:  req.Company,
		Position: req.Position,
		Date:     time.Now().UTC(),
		IsRead:   false,
	}
	if err := cc.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact"})
		return
	}

	cc.Inbox.Broadcast(ws.InboxPayload{
		ID:       contact.ID,
		Name:     contact.Name,
		Phone:    contact.Phone,
		Email:    contact.Email,
		Company:  contact.Company,
		Position: contact.Position,
		Date:     contact.Date,
	})

	c.JSON(http.StatusCreated, contact)
}

func (cc *ContactController) Get(c *gin.Context) {
	var contact models.Contact
	if err := cc.DB.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (cc *ContactController) Update(c *gin.Context) {
	var contact models.Contact
	if err := cc.DB.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	var req updateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Company != nil {
		contact.Company = *req.Company
	}
	if req.Position != nil {
		contact.Position = *req.Position
	}
	if req.IsRead != nil {
		contact.IsRead = *req.IsRead
	}

	if err := cc.DB.Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (cc *ContactController) Delete(c *gin.Context) {
	var contact models.Contact
	if err := cc.DB.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	if err := cc.DB.Delete(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// MarkRead flags one submission as read.
func (cc *ContactController) MarkRead(c *gin.Context) {
	var contact models.Contact
	if err := cc.DB.Where("id = ?", c.Param("id")).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	if err := cc.DB.Model(&contact).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// MarkAllRead flags every unread submission. A no-op when nothing is unread.
func (cc *ContactController) MarkAllRead(c *gin.Context) {
	res := cc.DB.Model(&models.Contact{}).Where("is_read = ?", false).Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contacts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": res.RowsAffected})
}
