package routes

import (
	"strings"

	"blogapi/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// requireAuth verifies the bearer token and stores the decoded claims in
// the request locals. Read endpoints stay public and skip this middleware.
func requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	c.Locals("user", claims)
	return c.Next()
}

// currentUser returns the claims attached by requireAuth.
func currentUser(c *fiber.Ctx) *auth.Claims {
	claims, _ := c.Locals("user").(*auth.Claims)
	return claims
}

// validationErrors maps validator failures to field-level messages.
func validationErrors(c *fiber.Ctx, err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	out := make([]fiber.Map, 0, len(errs))
	for _, fe := range errs {
		var message string
		switch fe.Tag() {
		case "email":
			message = fe.Field() + " must be a valid email address"
		case "min":
			message = fe.Field() + " must be at least " + fe.Param() + " characters"
		default:
			message = fe.Field() + " is required"
		}
		out = append(out, fiber.Map{
			"field":   strings.ToLower(fe.Field()),
			"message": message,
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": out,
	})
}
