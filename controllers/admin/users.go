package admin

import (
	"errors"
	"strings"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListUsers returns every account with its live balance.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("id asc").Find(&users).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_USERS")
	}

	out := make([]fiber.Map, 0, len(users))
	for i := range users {
		u := &users[i]
		out = append(out, fiber.Map{
			"id":       u.ID,
			"username": u.Username,
			"balance":  u.Balance,
			"role":     u.Role,
		})
	}
	return helpers.JSONSuccess(c, "Users retrieved successfully", out)
}

type AdjustBalanceRequest struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// AdjustBalance is the unconditional admin override: any signed amount, no
// minimum or maximum, recorded in the ledger with the given reason.
func AdjustBalance(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil || userID <= 0 {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	var req AdjustBalanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	reason := strings.TrimSpace(req.Reason)

	var balance float64
	txErr := database.DB.Transaction(func(tx *gorm.DB) error {
		b, err := services.AdjustBalance(tx, uint(userID), req.Amount,
			models.TrxAdjustment, reason, "", nil)
		if err != nil {
			return err
		}
		balance = b
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, services.ErrUserNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, txErr.Error())
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_ADJUST_BALANCE")
	}

	return helpers.JSONSuccess(c, "Balance adjusted successfully", fiber.Map{
		"user_id": userID,
		"balance": balance,
	})
}
