package bets

import (
	"errors"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

type PlaceBetRequest struct {
	MatchID   uint    `json:"match_id"`
	Amount    float64 `json:"amount"`
	Selection string  `json:"selection"`
}

func PlaceBet(c *fiber.Ctx) error {
	var req PlaceBetRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	if !models.ValidSelection(req.Selection) {
		return helpers.JSONError(c, services.ErrInvalidSelection.Error())
	}

	bet, balance, err := services.PlaceBet(database.DB, user.ID, req.MatchID, req.Amount, req.Selection)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMinStake),
			errors.Is(err, services.ErrInsufficientBalance):
			return helpers.JSONError(c, err.Error())
		case errors.Is(err, services.ErrMatchNotAvailable):
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		default:
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_PLACE_BET")
		}
	}

	return helpers.JSONSuccess(c, "Bet placed successfully", fiber.Map{
		"bet_id":        bet.ID,
		"match_id":      bet.MatchID,
		"amount":        bet.Amount,
		"selection":     bet.Selection,
		"potential_win": bet.PotentialWin,
		"status":        bet.Status,
		"balance":       balance,
	})
}
