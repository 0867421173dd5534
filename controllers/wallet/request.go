package wallet

import (
	"errors"
	"strings"

	"betsim/database"
	"betsim/helpers"
	"betsim/models"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

type SubmitRequest struct {
	Type           string  `json:"type"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	TransactionRef string  `json:"transaction_ref"`
}

func Submit(c *fiber.Ctx) error {
	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "SESSION_REQUIRED")
	}

	request, balance, err := services.SubmitWalletRequest(database.DB, user.ID,
		req.Type, req.Amount, strings.TrimSpace(req.Method), strings.TrimSpace(req.TransactionRef))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRequestType),
			errors.Is(err, services.ErrAmountRequired),
			errors.Is(err, services.ErrDepositTooSmall),
			errors.Is(err, services.ErrDepositTooLarge),
			errors.Is(err, services.ErrWithdrawTooSmall),
			errors.Is(err, services.ErrWithdrawTooLarge),
			errors.Is(err, services.ErrInsufficientBalance):
			return helpers.JSONError(c, err.Error())
		default:
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_SUBMIT_REQUEST")
		}
	}

	return helpers.JSONSuccess(c, "Request submitted successfully. Waiting for admin approval.", fiber.Map{
		"request_id": request.ID,
		"type":       request.Type,
		"amount":     request.Amount,
		"status":     request.Status,
		"balance":    balance,
	})
}
