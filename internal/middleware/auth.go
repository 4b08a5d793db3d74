package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"emlakpark_backend/internal/model"
	"emlakpark_backend/pkg/utils/jwt"
)

// SessionCookie is the HTTP-only cookie carrying the session token.
// A Bearer header is accepted as well for non-browser clients.
const SessionCookie = "session"

// AuthMiddleware rejects unauthenticated requests with 401 and stores
// the validated claims under c.Locals("user").
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(SessionCookie)
		if tokenString == "" {
			auth := c.Get(fiber.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				tokenString = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		claims, err := jwt.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session",
			})
		}

		c.Locals("user", claims)
		return c.Next()
	}
}

// AdminMiddleware assumes AuthMiddleware already ran. Authenticated
// non-admins get 403, distinct from the 401 for missing sessions.
func AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := c.Locals("user").(*jwt.Claims)
		if claims.Role != model.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin role required",
			})
		}
		return c.Next()
	}
}
