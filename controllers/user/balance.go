package user

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

func CheckBalance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	balance, err := services.CurrentBalance(database.DB, user.ID)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_BALANCE")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"username": user.Username,
		"balance":  balance,
	})
}
