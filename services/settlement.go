package services

import (
	"errors"
	"fmt"
	"time"

	"betsim/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ResultRefund voids a match: every pending bet gets its stake back.
const ResultRefund = "refund"

func ValidResult(result string) bool {
	return models.ValidSelection(result) || result == ResultRefund
}

// SettleMatch resolves every pending bet on a match. The match is flagged
// finished and locked first, outside the payout transaction; if the payouts
// then fail the match stays locked while its bets remain pending. The
// window is logged when it opens.
//
// The payouts themselves are one all-or-nothing batch: winners are credited
// their frozen potential win, refunds return the stake, losers get nothing.
// Only bets still pending are touched, so settling twice leaves the first
// settlement's outcomes alone.
func SettleMatch(db *gorm.DB, matchID uint, result string) (int, error) {
	if !ValidResult(result) {
		return 0, ErrInvalidResult
	}

	var match models.Match
	if err := db.First(&match, matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrMatchNotFound
		}
		return 0, err
	}

	if err := db.Model(&match).Updates(map[string]any{
		"status": models.MatchFinished,
		"locked": true,
	}).Error; err != nil {
		return 0, err
	}

	settled := 0
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var bets []models.Bet
		if err := forUpdate(tx).
			Where("match_id = ? AND status = ?", match.ID, models.BetPending).
			Find(&bets).Error; err != nil {
			return err
		}

		refID := uuid.New().String()
		now := time.Now()

		for i := range bets {
			bet := &bets[i]
			status, credit := bet.SettleOutcome(result)

			res := tx.Model(&models.Bet{}).
				Where("id = ? AND status = ?", bet.ID, models.BetPending).
				Updates(map[string]any{"status": status, "settled_at": now})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Resolved by a concurrent settlement, leave it be.
				continue
			}

			if credit > 0 {
				trxType := models.TrxBetPayout
				if status == models.BetRefunded {
					trxType = models.TrxBetRefund
				}
				_, err := AdjustBalance(tx, bet.UserID, credit, trxType,
					fmt.Sprintf("Bet %d %s on match %d", bet.ID, status, match.ID), refID,
					map[string]any{"bet_id": bet.ID, "match_id": match.ID, "result": result})
				if err != nil {
					return err
				}
			}
			settled++
		}
		return nil
	})
	if txErr != nil {
		logrus.WithFields(logrus.Fields{
			"match_id": match.ID,
			"result":   result,
		}).WithError(txErr).Error("settlement rolled back, match left finished/locked with pending bets")
		return 0, txErr
	}

	return settled, nil
}
