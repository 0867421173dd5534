package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RequestDeposit  = "deposit"
	RequestWithdraw = "withdraw"
)

const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type WalletRequest struct {
	gorm.Model

	UserID         uint    `gorm:"index:idx_request_user_status" json:"user_id"`
	Type           string  `gorm:"size:8;index" json:"type"`
	Amount         float64 `json:"amount"`
	Method         string  `gorm:"size:50" json:"method"`
	TransactionRef string  `gorm:"size:100" json:"transaction_ref"`
	Status         string  `gorm:"size:8;index:idx_request_user_status;default:pending" json:"status"`
	AdminNotes     string  `gorm:"type:text" json:"admin_notes"`

	ProcessedAt *time.Time `json:"processed_at"`

	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// CanTransitionRequest reports whether a wallet request status change is
// legal. Requests are processed exactly once: only pending rows may move,
// and only to approved or rejected.
func CanTransitionRequest(from, to string) bool {
	if from != RequestPending {
		return false
	}
	return to == RequestApproved || to == RequestRejected
}
