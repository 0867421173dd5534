package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	SelectionHome = "home"
	SelectionDraw = "draw"
	SelectionAway = "away"
)

const (
	BetPending  = "pending"
	BetWon      = "won"
	BetLost     = "lost"
	BetRefunded = "refunded"
)

func ValidSelection(s string) bool {
	return s == SelectionHome || s == SelectionDraw || s == SelectionAway
}

type Bet struct {
	gorm.Model

	UserID       uint    `gorm:"index:idx_bet_user_status" json:"user_id"`
	MatchID      uint    `gorm:"index" json:"match_id"`
	Amount       float64 `json:"amount"`
	Selection    string  `gorm:"size:8" json:"selection"`
	PotentialWin float64 `json:"potential_win"`
	Status       string  `gorm:"size:8;index:idx_bet_user_status;default:pending" json:"status"`

	SettledAt *time.Time `json:"settled_at"`

	User  User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Match Match `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// SettleOutcome maps a match result onto a bet: the new status and the
// amount to credit back to the bettor. A refund returns the stake, a win
// returns the payout frozen at placement time.
func (b *Bet) SettleOutcome(result string) (status string, credit float64) {
	switch {
	case result == "refund":
		return BetRefunded, b.Amount
	case b.Selection == result:
		return BetWon, b.PotentialWin
	default:
		return BetLost, 0
	}
}

// CanTransitionBet reports whether a bet status change is legal. Bets leave
// pending exactly once and never come back.
func CanTransitionBet(from, to string) bool {
	if from != BetPending {
		return false
	}
	return to == BetWon || to == BetLost || to == BetRefunded
}
