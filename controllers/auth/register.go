package auth

import (
	"strings"

	"betsim/config"
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	username := strings.TrimSpace(req.Username)
	if len(username) < 3 {
		return helpers.JSONError(c, "Username must be at least 3 characters")
	}
	if len(req.Password) < 6 {
		return helpers.JSONError(c, "Password must be at least 6 characters")
	}
	if req.Password != req.ConfirmPassword {
		return helpers.JSONError(c, "Passwords do not match")
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "Username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "REGISTRATION_FAILED")
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		Balance:      config.C.DemoBalance,
		Role:         models.RoleUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return helpers.JSONError(c, "Registration failed. Please try again.")
	}

	return helpers.JSONSuccess(c, "Registration successful", fiber.Map{
		"username": user.Username,
		"balance":  user.Balance,
	})
}
