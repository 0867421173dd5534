package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model

	Username     string  `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	Balance      float64 `json:"balance"`
	Role         string  `gorm:"size:8;default:user" json:"role"`

	Bets           []Bet             `gorm:"foreignKey:UserID"`
	Transactions   []UserTransaction `gorm:"foreignKey:UserID"`
	WalletRequests []WalletRequest   `gorm:"foreignKey:UserID"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Ledger transaction types, one per balance-mutating operation.
const (
	TrxBetStake        = "bet_stake"
	TrxBetPayout       = "bet_payout"
	TrxBetRefund       = "bet_refund"
	TrxDeposit         = "deposit"
	TrxWithdrawHold    = "withdraw_hold"
	TrxWithdrawRelease = "withdraw_release"
	TrxAdjustment      = "adjustment"
)

type UserTransaction struct {
	gorm.Model

	UserID        uint    `gorm:"index"`
	TrxType       string  `gorm:"size:16;index"`
	Amount        float64 `json:"amount"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`
	Note          string  `gorm:"size:255"`
	RefID         string  `gorm:"size:64;index"`

	ExtraInfo datatypes.JSON `gorm:"type:jsonb"`
}
