package routes

import (
	"math"
	"strings"

	"blogapi/config"
	"blogapi/db"
	"blogapi/models"

	"github.com/gofiber/fiber/v2"
)

type PostRequest struct {
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	Category      uint   `json:"category" validate:"required"`
	FeaturedImage string `json:"featuredImage"`
}

type PostListResponse struct {
	Posts []models.Post `json:"posts"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
}

// getPosts - GET /api/posts?page&limit&search&category
func getPosts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	search := c.Query("search")
	category := c.Query("category")

	// Base query with filters
	dbQuery := db.DB.Model(&models.Post{})
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		dbQuery = dbQuery.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern)
	}
	if category != "" {
		dbQuery = dbQuery.Where("category_id = ?", category)
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count posts",
		})
	}

	posts := []models.Post{}
	if err := dbQuery.Preload("Category").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get posts",
		})
	}

	return c.JSON(PostListResponse{
		Posts: posts,
		Total: total,
		Page:  page,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	})
}

// getPost - GET /api/posts/:id
func getPost(c *fiber.Ctx) error {
	id := c.Params("id")
	var post models.Post

	// Preload the full Category struct
	if err := db.DB.Preload("Category").First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	return c.JSON(post)
}

// createPost - POST /api/posts
func createPost(c *fiber.Ctx) error {
	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return validationErrors(c, err)
	}

	// Validate that the referenced category exists
	var category models.Category
	if err := db.DB.First(&category, req.Category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	post := models.Post{
		Title:         req.Title,
		Content:       req.Content,
		CategoryID:    &req.Category,
		FeaturedImage: req.FeaturedImage,
		LikeCount:     0,
		LikedBy:       []uint{},
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create post",
		})
	}
	post.Category = category

	notify("post_created", post)
	return c.Status(fiber.StatusCreated).JSON(post)
}

// updatePost - PUT /api/posts/:id
func updatePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if err := validate.Struct(&req); err != nil {
		return validationErrors(c, err)
	}

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	var category models.Category
	if err := db.DB.First(&category, req.Category).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	post.Title = req.Title
	post.Content = req.Content
	post.CategoryID = &req.Category
	post.FeaturedImage = req.FeaturedImage
	if err := db.DB.Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update post",
		})
	}
	post.Category = category

	return c.JSON(post)
}

// deletePost - DELETE /api/posts/:id
func deletePost(c *fiber.Ctx) error {
	id := c.Params("id")

	var post models.Post
	if err := db.DB.First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete post",
		})
	}

	// Comments are left in place unless cascade deletes are enabled
	if config.AppConfig.CascadeDelete {
		if err := db.DB.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to delete comments",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// likePost - POST /api/posts/:id/like
func likePost(c *fiber.Ctx) error {
	user := currentUser(c)

	var post models.Post
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	for _, likerID := range post.LikedBy {
		if likerID == user.UserID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "User already liked this post",
			})
		}
	}

	post.LikedBy = append(post.LikedBy, user.UserID)
	post.LikeCount = len(post.LikedBy)

	// Unguarded read-modify-write: concurrent likes on the same post race
	// and the last writer wins on likeCount/likedBy
	if err := db.DB.Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to like post",
		})
	}

	return c.JSON(fiber.Map{
		"likeCount": post.LikeCount,
		"likedBy":   post.LikedBy,
	})
}

// unlikePost - POST /api/posts/:id/unlike
func unlikePost(c *fiber.Ctx) error {
	user := currentUser(c)

	var post models.Post
	if err := db.DB.First(&post, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}

	liked := false
	remaining := make([]uint, 0, len(post.LikedBy))
	for _, likerID := range post.LikedBy {
		if likerID == user.UserID {
			liked = true
			continue
		}
		remaining = append(remaining, likerID)
	}
	if !liked {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "User has not liked this post",
		})
	}

	post.LikedBy = remaining
	post.LikeCount = len(post.LikedBy)

	if err := db.DB.Save(&post).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to unlike post",
		})
	}

	return c.JSON(fiber.Map{
		"likeCount": post.LikeCount,
		"likedBy":   post.LikedBy,
	})
}
