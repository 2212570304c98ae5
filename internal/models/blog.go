package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Blog is a published article. ImageURL mirrors the first attached image so
// list views don't need the images relation; it falls back to a placeholder
// when a post has no images.
type Blog struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `gorm:"type:text" json:"excerpt"`
	FullContent string    `gorm:"type:text" json:"fullContent"`
	ImageURL    string    `json:"imageUrl"`
	Date        time.Time `json:"date"`
	ReadTime    string    `json:"readTime"`
	Category    string    `json:"category"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Images      []Image   `gorm:"foreignKey:BlogID" json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
