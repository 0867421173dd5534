package matches

import (
	"errors"
	"strings"
	"time"

	"betsim/database"
	"betsim/helpers"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

type CreateMatchRequest struct {
	Sport     string    `json:"sport"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	StartTime time.Time `json:"start_time"`
	HomeOdds  float64   `json:"home_odds"`
	DrawOdds  float64   `json:"draw_odds"`
	AwayOdds  float64   `json:"away_odds"`
}

func Create(c *fiber.Ctx) error {
	var req CreateMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	req.Team1 = strings.TrimSpace(req.Team1)
	req.Team2 = strings.TrimSpace(req.Team2)
	if req.Team1 == "" || req.Team2 == "" || req.StartTime.IsZero() {
		return helpers.JSONError(c, "TEAMS_AND_START_TIME_REQUIRED")
	}
	if req.HomeOdds <= 0 || req.DrawOdds <= 0 || req.AwayOdds <= 0 {
		return helpers.JSONError(c, "ODDS_MUST_BE_POSITIVE")
	}

	match, err := services.CreateMatch(database.DB, req.Sport, req.Team1, req.Team2,
		req.StartTime, req.HomeOdds, req.DrawOdds, req.AwayOdds)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_CREATE_MATCH")
	}

	return helpers.JSONSuccess(c, "Match created successfully", fiber.Map{
		"id":         match.ID,
		"sport":      match.Sport,
		"team1":      match.Team1,
		"team2":      match.Team2,
		"start_time": match.StartTime,
		"status":     match.Status,
	})
}

type UpdateOddsRequest struct {
	HomeOdds float64 `json:"home_odds"`
	DrawOdds float64 `json:"draw_odds"`
	AwayOdds float64 `json:"away_odds"`
}

func UpdateOdds(c *fiber.Ctx) error {
	matchID, err := c.ParamsInt("id")
	if err != nil || matchID <= 0 {
		return helpers.JSONError(c, "INVALID_MATCH_ID")
	}

	var req UpdateOddsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.HomeOdds <= 0 || req.DrawOdds <= 0 || req.AwayOdds <= 0 {
		return helpers.JSONError(c, "ODDS_MUST_BE_POSITIVE")
	}

	err = services.UpdateOdds(database.DB, uint(matchID), req.HomeOdds, req.DrawOdds, req.AwayOdds)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMatchNotFound):
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrOddsLocked):
			return helpers.JSONError(c, err.Error())
		default:
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_UPDATE_ODDS")
		}
	}

	return helpers.JSONSuccess(c, "Odds updated successfully", nil)
}

type SettleRequest struct {
	Result string `json:"result"`
}

func Settle(c *fiber.Ctx) error {
	matchID, err := c.ParamsInt("id")
	if err != nil || matchID <= 0 {
		return helpers.JSONError(c, "INVALID_MATCH_ID")
	}

	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	settled, err := services.SettleMatch(database.DB, uint(matchID), req.Result)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidResult):
			return helpers.JSONError(c, err.Error())
		case errors.Is(err, services.ErrMatchNotFound):
			return helpers.JSONErrorStatus(c, fiber.StatusNotFound, err.Error())
		default:
			return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_SETTLE_MATCH")
		}
	}

	return helpers.JSONSuccess(c, "Match settled successfully", fiber.Map{
		"match_id":     matchID,
		"result":       req.Result,
		"bets_settled": settled,
	})
}
