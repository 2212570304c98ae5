package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factorypro/site_backend/internal/config"
	"github.com/factorypro/site_backend/internal/controllers"
	"github.com/factorypro/site_backend/internal/middleware"
	"github.com/factorypro/site_backend/internal/storage"
	"github.com/factorypro/site_backend/internal/ws"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config, store storage.Storage, inbox *ws.InboxHub) {
	ttl, err := time.ParseDuration(cfg.SessionTTLHours + "h")
	if err != nil || ttl == 0 {
		ttl = 24 * time.Hour
	}

	authCtrl := &controllers.AuthController{
		JWTSecret:         cfg.JWTSecret,
		AdminPassword:     cfg.AdminPassword,
		AdminPasswordHash: cfg.AdminPasswordHash,
		SessionTTL:        ttl,
		SecureCookie:      cfg.Env == "production",
	}
	contactCtrl := &controllers.ContactController{DB: db, Inbox: inbox}
	blogCtrl := &controllers.BlogController{DB: db, Store: store}
	testimonialCtrl := &controllers.TestimonialController{DB: db}
	imageCtrl := &controllers.ImageController{DB: db, Store: store}

	// Auth
	r.POST("/api/auth/login", authCtrl.Login)
	r.POST("/api/auth/logout", authCtrl.Logout)
	r.GET("/api/auth/check", authCtrl.Check)

	// Public: site content reads and contact-form intake
	r.GET("/api/blogs", blogCtrl.List)
	r.GET("/api/blogs/:id", blogCtrl.Get)
	r.GET("/api/blogs/slug/:slug", blogCtrl.GetBySlug)
	r.GET("/api/testimonials", testimonialCtrl.List)
	r.GET("/api/testimonials/:id", testimonialCtrl.Get)
	r.GET("/api/images", imageCtrl.List)
	r.GET("/api/images/:id", imageCtrl.Get)
	r.POST("/api/contacts", contactCtrl.Create)

	// Admin: everything that mutates site content, gated by the session
	// guard
	admin := r.Group("/api", middleware.RequireAuth(cfg.JWTSecret))
	{
		admin.GET("/contacts", contactCtrl.List)
		admin.GET("/contacts/:id", contactCtrl.Get)
		admin.PATCH("/contacts/:id", contactCtrl.Update)
		admin.DELETE("/contacts/:id", contactCtrl.Delete)
		admin.POST("/contacts/:id/read", contactCtrl.MarkRead)
		admin.POST("/contacts/read-all", contactCtrl.MarkAllRead)

		admin.POST("/blogs", blogCtrl.Create)
		admin.PATCH("/blogs/:id", blogCtrl.Update)
		admin.DELETE("/blogs/:id", blogCtrl.Delete)

		admin.POST("/testimonials", testimonialCtrl.Create)
		admin.PATCH("/testimonials/:id", testimonialCtrl.Update)
		admin.DELETE("/testimonials/:id", testimonialCtrl.Delete)

		admin.POST("/images", imageCtrl.Create)
		admin.PATCH("/images/:id", imageCtrl.Update)
		admin.DELETE("/images/:id", imageCtrl.Delete)

		if inbox != nil {
			admin.GET("/ws/inbox", ws.InboxHandler(inbox))
		}
	}
}
