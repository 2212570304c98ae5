package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Testimonial is a customer quote shown on the public site. Content is the
// short card text, FullContent the expanded version behind the detail view.
type Testimonial struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Content     string    `gorm:"type:text" json:"content"`
	FullContent string    `gorm:"type:text" json:"fullContent"`
	Author      string    `json:"author"`
	Position    string    `json:"position"`
	Company     string    `json:"company"`
	Rating      int       `json:"rating"`
	AvatarURL   string    `json:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (t *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
