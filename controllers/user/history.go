package user

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
)

// MyBets lists the caller's bets, newest first.
func MyBets(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	var bets []models.Bet
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&bets).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_BETS")
	}

	return helpers.JSONSuccess(c, "Bets retrieved successfully", bets)
}

// MyWalletRequests lists the caller's deposit/withdraw requests.
func MyWalletRequests(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	var requests []models.WalletRequest
	if err := database.DB.
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_REQUESTS")
	}

	return helpers.JSONSuccess(c, "Requests retrieved successfully", requests)
}
