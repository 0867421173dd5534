package auth

import (
	"strings"
	"time"

	"betsim/config"
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var user models.User
	err := database.DB.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	// The admin code only unlocks the panel on accounts that already carry
	// the admin role.
	adminAccess := user.IsAdmin() && req.AdminCode == config.C.AdminCode

	session := models.Session{
		UserID:      user.ID,
		AdminAccess: adminAccess,
		ExpiresAt:   time.Now().Add(config.C.SessionTTL),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "LOGIN_FAILED")
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token":        session.SID,
		"username":     user.Username,
		"role":         user.Role,
		"admin_access": adminAccess,
		"balance":      user.Balance,
		"expires_at":   session.ExpiresAt,
	})
}

func Logout(c *fiber.Ctx) error {
	session, ok := c.Locals("session").(models.Session)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	if err := database.DB.Delete(&models.Session{}, session.ID).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "LOGOUT_FAILED")
	}
	return helpers.JSONSuccess(c, "Logged out", nil)
}
