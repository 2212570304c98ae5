package config

import (
	"os"
)

type Config struct {
	Port string
	Env  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSchema   string
	DBSSLMode  string
	DBPoolMax  string
	DBLogLevel string

	JWTSecret       string
	SessionTTLHours string

	// Single admin credential. When AdminPasswordHash is set it takes
	// precedence and login compares against the bcrypt hash instead of the
	// plaintext value.
	AdminPassword     string
	AdminPasswordHash string

	UploadDir string
	SeedDemo  string
}

func Load() *Config {
	return &Config{
		Port: getenv("PORT", "8080"),
		Env:  getenv("APP_ENV", "development"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "factorypro_db"),
		DBSchema:   getenv("DB_SCHEMA", "public"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),
		DBPoolMax:  getenv("DB_POOL_MAX", "10"),
		DBLogLevel: getenv("DB_LOG_LEVEL", "warn"),

		JWTSecret:       getenv("JWT_SECRET", "your-secret-key"),
		SessionTTLHours: getenv("SESSION_TTL_HOURS", "24"),

		AdminPassword:     getenv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),

		UploadDir: getenv("UPLOAD_DIR", "public/uploads"),
		SeedDemo:  getenv("SEED_DEMO", "false"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
