package main

import (
	"log"
	"os"

	"blogapi/config"
	"blogapi/db"
	"blogapi/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load configuration
	config.Load()

	// Initialize database
	db.InitDatabase(config.AppConfig.DatabasePath)

	// Create uploads directory if it doesn't exist
	if _, err := os.Stat(config.AppConfig.UploadDir); os.IsNotExist(err) {
		os.Mkdir(config.AppConfig.UploadDir, 0755)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Serve uploaded files
	app.Static("/uploads", config.AppConfig.UploadDir)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
