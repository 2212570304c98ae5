package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a stored picture. Gallery images stand alone (BlogID nil); images
// attached to a post carry its ID and a position within the post's set.
type Image struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `json:"date"`
	BlogID      *string   `gorm:"type:uuid;index" json:"blogId,omitempty"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
