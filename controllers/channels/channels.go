package channels

import (
	"errors"
	"strings"

	"betsim/database"
	"betsim/helpers"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

// List returns active channels in display order.
func List(c *fiber.Ctx) error {
	channels, err := services.ListChannels(database.DB, true)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_CHANNELS")
	}
	return helpers.JSONSuccess(c, "Channels retrieved successfully", channels)
}

// ListAll returns every channel, active or not, for the admin panel.
func ListAll(c *fiber.Ctx) error {
	channels, err := services.ListChannels(database.DB, false)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_CHANNELS")
	}
	return helpers.JSONSuccess(c, "Channels retrieved successfully", channels)
}

type ChannelRequest struct {
	Name      string         `json:"name"`
	StreamURL string         `json:"stream_url"`
	Position  int            `json:"position"`
	IsActive  *bool          `json:"is_active"`
	Meta      map[string]any `json:"meta"`
}

func Create(c *fiber.Ctx) error {
	var req ChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.StreamURL = strings.TrimSpace(req.StreamURL)
	if req.Name == "" || req.StreamURL == "" {
		return helpers.JSONError(c, "NAME_AND_STREAM_URL_REQUIRED")
	}

	channel, err := services.CreateChannel(database.DB, req.Name, req.StreamURL, req.Position, req.Meta)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_CHANNEL")
	}
	return helpers.JSONSuccess(c, "Channel created successfully", channel)
}

func Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_CHANNEL_ID")
	}

	var req ChannelRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.StreamURL = strings.TrimSpace(req.StreamURL)
	if req.Name == "" || req.StreamURL == "" {
		return helpers.JSONError(c, "NAME_AND_STREAM_URL_REQUIRED")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	channel, err := services.UpdateChannel(database.DB, uint(id), req.Name, req.StreamURL, req.Position, isActive)
	if err != nil {
		if errors.Is(err, services.ErrChannelNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_CHANNEL")
	}
	return helpers.JSONSuccess(c, "Channel updated successfully", channel)
}

func Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_CHANNEL_ID")
	}

	if err := services.DeleteChannel(database.DB, uint(id)); err != nil {
		if errors.Is(err, services.ErrChannelNotFound) {
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		}
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_DELETE_CHANNEL")
	}
	return helpers.JSONSuccess(c, "Channel deleted successfully", nil)
}
