package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/models"
)

// SeedDemoContent fills empty tables with sample site content. Each table is
// only touched when it has no rows, so re-running the server never
// duplicates or overwrites data.
func SeedDemoContent(db *gorm.DB) error {
	if err := seedContacts(db); err != nil {
		return err
	}
	if err := seedBlogs(db); err != nil {
		return err
	}
	return seedTestimonials(db)
}

func seedContacts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Contact{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	contacts := []models.Contact{
		{
			Name:     "Somchai Jaidee",
			Phone:    "0891234567",
			Email:    "somchai@example.com",
			Company:  "Thai Industrial Co., Ltd.",
			Position: "Production Manager",
			Date:     time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			IsRead:   false,
		},
		{
			Name:     "Wipa Somboon",
			Phone:    "0987654321",
			Email:    "wipa@example.com",
			Company:  "Precision Parts Co., Ltd.",
			Position: "CEO",
			Date:     time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC),
			IsRead:   true,
		},
	}
	for i := range contacts {
		if err := db.Create(&contacts[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(contacts)).Msg("seeded demo contacts")
	return nil
}

func seedBlogs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Blog{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	blogs := []models.Blog{
		{
			Title:       "5 Ways to Improve Production with OEE",
			Excerpt:     "Overall Equipment Effectiveness is the key metric for improving any production process.",
			FullContent: "Overall Equipment Effectiveness (OEE) is the key metric for improving any production process. This article walks through five ways to put OEE data to work: real-time tracking, loss analysis, planned maintenance windows, operator dashboards, and continuous-improvement reviews.",
			ImageURL:    "/automated-assembly-line.png",
			Date:        time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			ReadTime:    "5 min",
			Category:    "Production",
			Slug:        "5-ways-to-improve-production-with-oee",
		},
		{
			Title:       "Industry 4.0 and the Future of Manufacturing",
			Excerpt:     "Industry 4.0 is changing how factories operate, connecting machines, data and people.",
			FullContent: "Industry 4.0 is changing how factories operate. By integrating IoT sensors, AI and big-data analytics into the production line, manufacturers gain the visibility and flexibility of a smart factory. This article explains what that shift means for plant operations over the next decade.",
			ImageURL:    "/interconnected-factory.png",
			Date:        time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC),
			ReadTime:    "8 min",
			Category:    "Technology",
			Slug:        "industry-4-0-and-the-future-of-manufacturing",
		},
	}
	for i := range blogs {
		if err := db.Create(&blogs[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(blogs)).Msg("seeded demo blogs")
	return nil
}

func seedTestimonials(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Testimonial{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	testimonials := []models.Testimonial{
		{
			Content:     "Factory Pro let us track and analyse production data in real time, so problems get fixed the moment they appear.",
			FullContent: "Factory Pro let us track and analyse production data in real time, so problems get fixed the moment they appear. Six months in we have cut machine downtime by 15% and raised output by 20% without adding resources.",
			Author:      "Somchai Jaidee",
			Position:    "Production Manager",
			Company:     "Thai Industrial Co., Ltd.",
			Rating:      5,
			AvatarURL:   "/placeholder.svg?height=50&width=50",
		},
		{
			Content:     "The reporting alone paid for the system within the first quarter.",
			FullContent: "The reporting alone paid for the system within the first quarter. Our planners finally see the same numbers the shop floor sees, and weekly reviews went from arguments to decisions.",
			Author:      "Wipa Somboon",
			Position:    "CEO",
			Company:     "Precision Parts Co., Ltd.",
			Rating:      4,
			AvatarURL:   "/placeholder.svg?height=50&width=50",
		},
	}
	for i := range testimonials {
		if err := db.Create(&testimonials[i]).Error; err != nil {
			return err
		}
	}
	log.Info().Int("count", len(testimonials)).Msg("seeded demo testimonials")
	return nil
}
