package services

import (
	"encoding/json"
	"errors"

	"betsim/helpers"
	"betsim/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdjustBalance adds delta (positive or negative) to the user's balance and
// records a ledger row. The storage layer does not enforce a non-negative
// balance; callers pre-check funds before debiting. The user row is locked
// and the balance updated with an atomic increment, so the change is safe
// against concurrent mutations within the caller's transaction scope.
//
// When refID is empty a fresh one is generated. The new balance is returned.
func AdjustBalance(tx *gorm.DB, userID uint, delta float64, trxType, note, refID string, extra map[string]any) (float64, error) {
	var user models.User
	if err := forUpdate(tx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	before := user.Balance
	after := helpers.FormatFloat(before+delta, 2)

	if err := tx.Model(&user).
		Update("balance", gorm.Expr("balance + ?", delta)).Error; err != nil {
		return 0, err
	}

	if refID == "" {
		refID = uuid.New().String()
	}

	entry := models.UserTransaction{
		UserID:        user.ID,
		TrxType:       trxType,
		Amount:        delta,
		BalanceBefore: before,
		BalanceAfter:  after,
		Note:          note,
		RefID:         refID,
	}
	if extra != nil {
		raw, err := json.Marshal(extra)
		if err != nil {
			return 0, err
		}
		entry.ExtraInfo = raw
	}

	if err := tx.Create(&entry).Error; err != nil {
		return 0, err
	}

	return after, nil
}

// CurrentBalance reads the user's balance straight from the store. Session
// caches are never trusted; handlers call this after every money move.
func CurrentBalance(db *gorm.DB, userID uint) (float64, error) {
	var user models.User
	if err := db.Select("balance").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return user.Balance, nil
}
