package services

import (
	"errors"
	"fmt"
	"time"

	"betsim/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	MinDeposit  = 100
	MaxDeposit  = 50000
	MinWithdraw = 500
	MaxWithdraw = 20000
)

// SubmitWalletRequest validates and records a deposit or withdrawal request.
// Withdrawal funds are held: the amount is debited and committed before the
// request row is persisted, so a failed insert leaves the hold in place.
// That case is logged.
func SubmitWalletRequest(db *gorm.DB, userID uint, reqType string, amount float64, method, transactionRef string) (*models.WalletRequest, float64, error) {
	if reqType != models.RequestDeposit && reqType != models.RequestWithdraw {
		return nil, 0, ErrInvalidRequestType
	}
	if amount <= 0 {
		return nil, 0, ErrAmountRequired
	}

	var balance float64

	switch reqType {
	case models.RequestDeposit:
		if amount < MinDeposit {
			return nil, 0, ErrDepositTooSmall
		}
		if amount > MaxDeposit {
			return nil, 0, ErrDepositTooLarge
		}
		b, err := CurrentBalance(db, userID)
		if err != nil {
			return nil, 0, err
		}
		balance = b

	case models.RequestWithdraw:
		if amount < MinWithdraw {
			return nil, 0, ErrWithdrawTooSmall
		}
		// Hold the funds in their own committed transaction.
		holdErr := db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := forUpdate(tx).First(&user, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return err
			}
			if amount > user.Balance {
				return ErrInsufficientBalance
			}
			if amount > MaxWithdraw {
				return ErrWithdrawTooLarge
			}

			b, err := AdjustBalance(tx, user.ID, -amount, models.TrxWithdrawHold,
				"Withdrawal hold", "", nil)
			if err != nil {
				return err
			}
			balance = b
			return nil
		})
		if holdErr != nil {
			return nil, 0, holdErr
		}
	}

	request := models.WalletRequest{
		UserID:         userID,
		Type:           reqType,
		Amount:         amount,
		Method:         method,
		TransactionRef: transactionRef,
		Status:         models.RequestPending,
	}
	if err := db.Create(&request).Error; err != nil {
		if reqType == models.RequestWithdraw {
			logrus.WithFields(logrus.Fields{
				"user_id": userID,
				"amount":  amount,
			}).WithError(err).Error("withdrawal hold committed but request insert failed, funds held")
		}
		return nil, 0, err
	}

	return &request, balance, nil
}

// ProcessWalletRequest applies an admin decision to a pending request.
// Approving a deposit credits the amount; rejecting a withdrawal releases
// the hold; the other two combinations move no money. The status update and
// any credit commit together. A request that already left pending is
// rejected rather than re-applied.
func ProcessWalletRequest(db *gorm.DB, requestID uint, status, notes string) (*models.WalletRequest, error) {
	if status != models.RequestApproved && status != models.RequestRejected {
		return nil, ErrInvalidStatus
	}

	var request models.WalletRequest
	txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&request, requestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}

		if !models.CanTransitionRequest(request.Status, status) {
			return ErrRequestNotPending
		}

		now := time.Now()
		res := tx.Model(&models.WalletRequest{}).
			Where("id = ? AND status = ?", request.ID, models.RequestPending).
			Updates(map[string]any{
				"status":       status,
				"admin_notes":  notes,
				"processed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRequestNotPending
		}

		switch {
		case status == models.RequestApproved && request.Type == models.RequestDeposit:
			_, err := AdjustBalance(tx, request.UserID, request.Amount, models.TrxDeposit,
				fmt.Sprintf("Deposit request %d approved", request.ID), "",
				map[string]any{"request_id": request.ID, "method": request.Method})
			if err != nil {
				return err
			}
		case status == models.RequestRejected && request.Type == models.RequestWithdraw:
			_, err := AdjustBalance(tx, request.UserID, request.Amount, models.TrxWithdrawRelease,
				fmt.Sprintf("Withdrawal request %d rejected, hold released", request.ID), "",
				map[string]any{"request_id": request.ID})
			if err != nil {
				return err
			}
		}

		request.Status = status
		request.AdminNotes = notes
		request.ProcessedAt = &now
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &request, nil
}
