package services

import (
	"errors"
	"fmt"

	"betsim/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const MinStake = 10

// PlaceBet validates and records a stake against a match's current odds.
// Validation runs in order (first failure wins): minimum stake, sufficient
// balance, match open for betting. The potential win is frozen at placement
// time and never recomputed. The stake debit and the bet insert commit
// together or not at all.
func PlaceBet(db *gorm.DB, userID, matchID uint, amount float64, selection string) (*models.Bet, float64, error) {
	var bet models.Bet
	var balance float64

	txErr := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := forUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if amount < MinStake {
			return ErrMinStake
		}
		if amount > user.Balance {
			return ErrInsufficientBalance
		}

		var match models.Match
		err := tx.Preload("Odds").
			Where("id = ? AND locked = ? AND status = ?", matchID, false, models.MatchUpcoming).
			First(&match).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMatchNotAvailable
			}
			return err
		}

		odds := match.Odds.ForSelection(selection)
		potentialWin, _ := decimal.NewFromFloat(amount).
			Mul(decimal.NewFromFloat(odds)).
			Round(2).Float64()

		newBalance, err := AdjustBalance(tx, user.ID, -amount, models.TrxBetStake,
			fmt.Sprintf("Stake on match %d (%s)", match.ID, selection), "",
			map[string]any{"match_id": match.ID, "selection": selection, "odds": odds})
		if err != nil {
			return err
		}
		balance = newBalance

		bet = models.Bet{
			UserID:       user.ID,
			MatchID:      match.ID,
			Amount:       amount,
			Selection:    selection,
			PotentialWin: potentialWin,
			Status:       models.BetPending,
		}
		return tx.Create(&bet).Error
	})
	if txErr != nil {
		return nil, 0, txErr
	}

	return &bet, balance, nil
}
