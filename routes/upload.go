package routes

import (
	"fmt"
	"path/filepath"
	"time"

	"blogapi/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// uploadImage - POST /api/posts/upload
func uploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file uploaded",
		})
	}

	// Unique filename: timestamp, random suffix, original name
	suffix := uuid.New().String()[:8]
	filename := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), suffix, filepath.Base(file.Filename))
	dest := filepath.Join(config.AppConfig.UploadDir, filename)

	// Save the file
	if err := c.SaveFile(file, dest); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save file",
		})
	}

	// Return the path that can be stored on a post
	return c.JSON(fiber.Map{
		"imageUrl": "/uploads/" + filename,
	})
}
