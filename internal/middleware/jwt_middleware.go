package middleware

import (
	"strings"

	"grostory/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware validating the Bearer session token.
// A missing token yields 401, an invalid or expired one 403. The decoded
// identity is stored in Fiber locals for subsequent handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if authHeader == "" || len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Access token required",
			})
		}

		identity, err := authService.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", identity.UserID)
		c.Locals("email", identity.Email)
		return c.Next()
	}
}
