package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application.
type Config struct {
	Port          string
	JWTSecret     string
	DatabasePath  string
	UploadDir     string
	CascadeDelete bool
}

// AppConfig is the loaded configuration, available to the whole application.
var AppConfig *Config

// Load reads configuration from a .env file (if present) and the
// environment, falling back to defaults. Call once at startup.
func Load() {
	godotenv.Load()

	AppConfig = &Config{
		Port:         getEnv("PORT", "5000"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
		DatabasePath: getEnv("DATABASE_PATH", "blog.db"),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		// Off by default: deleting a category or post leaves dependent
		// records with dangling references, matching the original behavior.
		CascadeDelete: getEnv("CASCADE_DELETE", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
