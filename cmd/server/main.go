package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/factorypro/site_backend/internal/config"
	"github.com/factorypro/site_backend/internal/database"
	"github.com/factorypro/site_backend/internal/logger"
	"github.com/factorypro/site_backend/internal/middleware"
	"github.com/factorypro/site_backend/internal/routes"
	"github.com/factorypro/site_backend/internal/storage"
	"github.com/factorypro/site_backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	if cfg.SeedDemo == "true" {
		if err := database.SeedDemoContent(db); err != nil {
			log.Fatal().Err(err).Msg("demo seed failed")
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Logger(), middleware.Recovery())

	// Uploaded files are served straight from the upload directory.
	r.Static("/uploads", cfg.UploadDir)

	store := storage.NewLocalStorage(cfg.UploadDir, "/uploads")
	inbox := ws.NewInboxHub()
	go inbox.Run()

	routes.Register(r, db, cfg, store, inbox)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
