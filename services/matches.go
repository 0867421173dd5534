package services

import (
	"errors"
	"time"

	"betsim/models"

	"gorm.io/gorm"
)

// CreateMatch inserts a match and its odds row together.
func CreateMatch(db *gorm.DB, sport, team1, team2 string, startTime time.Time, home, draw, away float64) (*models.Match, error) {
	match := models.Match{
		Sport:     sport,
		Team1:     team1,
		Team2:     team2,
		StartTime: startTime,
		Status:    models.MatchUpcoming,
	}

	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&match).Error; err != nil {
			return err
		}
		match.Odds = models.Odds{MatchID: match.ID, Home: home, Draw: draw, Away: away}
		return tx.Create(&match.Odds).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	return &match, nil
}

// UpdateOdds replaces a match's multipliers. Odds stay admin-editable until
// the match is locked; bets already placed keep their frozen payout.
func UpdateOdds(db *gorm.DB, matchID uint, home, draw, away float64) error {
	var match models.Match
	if err := db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMatchNotFound
		}
		return err
	}
	if match.Locked {
		return ErrOddsLocked
	}

	return db.Model(&models.Odds{}).
		Where("match_id = ?", match.ID).
		Updates(map[string]any{"home": home, "draw": draw, "away": away}).Error
}

// ListOpenMatches returns upcoming, unlocked matches with their odds.
func ListOpenMatches(db *gorm.DB) ([]models.Match, error) {
	var matches []models.Match
	err := db.Preload("Odds").
		Where("locked = ? AND status = ?", false, models.MatchUpcoming).
		Order("start_time asc").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// LockStartedMatches flips upcoming matches whose start time has passed to
// live and locks them for betting. Run periodically by the scheduler.
func LockStartedMatches(db *gorm.DB) (int64, error) {
	res := db.Model(&models.Match{}).
		Where("status = ? AND start_time <= ?", models.MatchUpcoming, time.Now()).
		Updates(map[string]any{"status": models.MatchLive, "locked": true})
	return res.RowsAffected, res.Error
}
