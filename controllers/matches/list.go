package matches

import (
	"betsim/database"
	"betsim/helpers"
	"betsim/services"

	"github.com/gofiber/fiber/v2"
)

// List returns matches that are open for betting, with their current odds.
func List(c *fiber.Ctx) error {
	matches, err := services.ListOpenMatches(database.DB)
	if err != nil {
		return helpers.JSONErrorStatus(c, fiber.StatusInternalServerError, "FAILED_TO_FETCH_MATCHES")
	}

	out := make([]fiber.Map, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		out = append(out, fiber.Map{
			"id":         m.ID,
			"sport":      m.Sport,
			"team1":      m.Team1,
			"team2":      m.Team2,
			"start_time": m.StartTime,
			"status":     m.Status,
			"odds": fiber.Map{
				"home": m.Odds.Home,
				"draw": m.Odds.Draw,
				"away": m.Odds.Away,
			},
		})
	}

	return helpers.JSONSuccess(c, "Matches retrieved successfully", out)
}
