package routes

import (
	"blogapi/db"
	"blogapi/models"

	"github.com/gofiber/fiber/v2"
)

type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// getCommentsByPost - GET /api/comments/post/:postId
func getCommentsByPost(c *fiber.Ctx) error {
	postID := c.Params("postId")

	comments := []models.Comment{}
	if err := db.DB.Where("post_id = ?", postID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get comments",
		})
	}

	return c.JSON(comments)
}

// addComment - POST /api/comments/post/:postId
func addComment(c *fiber.Ctx) error {
	user := currentUser(c)

	var post models.Post
	if err := db.DB.First(&post, c.Params("postId")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return validationErrors(c, err)
	}

	// Author comes from the authenticated identity, never the client
	author := user.Username
	if author == "" {
		author = user.Email
	}
	if author == "" {
		author = "Anonymous"
	}

	comment := models.Comment{
		PostID:  post.ID,
		Author:  author,
		Content: req.Content,
	}
	if err := db.DB.Create(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add comment",
		})
	}

	notify("comment_created", comment)
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// deleteComment - DELETE /api/comments/:commentId
func deleteComment(c *fiber.Ctx) error {
	id := c.Params("commentId")

	var comment models.Comment
	if err := db.DB.First(&comment, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Comment not found",
		})
	}

	if err := db.DB.Delete(&comment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete comment",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Comment deleted",
	})
}
