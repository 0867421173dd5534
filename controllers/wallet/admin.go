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

type ProcessRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

// Process applies an admin decision to a pending wallet request.
func Process(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("id")
	if err != nil || requestID <= 0 {
		return helpers.JSONError(c, "INVALID_REQUEST_ID")
	}

	var req ProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	request, err := services.ProcessWalletRequest(database.DB, uint(requestID),
		req.Status, strings.TrimSpace(req.AdminNotes))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus),
			errors.Is(err, services.ErrRequestNotPending):
			return helpers.JSONError(c, err.Error())
		case errors.Is(err, services.ErrRequestNotFound):
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		default:
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_PROCESS_REQUEST")
		}
	}

	return helpers.JSONSuccess(c, "Request "+request.Status, fiber.Map{
		"request_id":   request.ID,
		"type":         request.Type,
		"amount":       request.Amount,
		"status":       request.Status,
		"processed_at": request.ProcessedAt,
	})
}

// ListPending returns wallet requests for the admin panel, optionally
// filtered by status.
func ListPending(c *fiber.Ctx) error {
	status := c.Query("status", models.RequestPending)

	var requests []models.WalletRequest
	q := database.DB.Order("created_at asc")
	if status != "all" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&requests).Error; err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_REQUESTS")
	}

	return helpers.JSONSuccess(c, "Requests retrieved successfully", requests)
}
