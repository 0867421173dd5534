package middlewares

import (
	"strings"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

// UserAuth resolves the session token and loads the authenticated user from
// the store. Nothing client-side is trusted: role and balance are re-read
// on every request.
func UserAuth(c *fiber.Ctx) error {
	sid := sessionToken(c)
	if sid == "" {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("User").Where("sid = ?", sid).First(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SESSION")
	}
	if session.Expired() {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_EXPIRED")
	}

	c.Locals("user", session.User)
	c.Locals("session", session)
	return c.Next()
}

// AdminAuth gates admin routes. Runs after UserAuth; requires role=admin
// plus admin access unlocked with the admin code at login.
func AdminAuth(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	if !user.IsAdmin() || !session.AdminAccess {
		return helpers.JSONErrorStatus(c, fiber.StatusForbidden, "ADMIN_ACCESS_REQUIRED")
	}
	return c.Next()
}

func sessionToken(c *fiber.Ctx) string {
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(c.Get("X-Session-Token"))
}
