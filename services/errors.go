package services

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrMinStake          = errors.New("minimum bet amount is 10")
	ErrMatchNotAvailable = errors.New("match not available for betting")
	ErrMatchNotFound     = errors.New("match not found")
	ErrOddsLocked        = errors.New("odds are locked")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrInvalidResult     = errors.New("invalid result")

	ErrAmountRequired     = errors.New("amount must be greater than 0")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrDepositTooSmall    = errors.New("minimum deposit is 100")
	ErrDepositTooLarge    = errors.New("maximum deposit is 50000")
	ErrWithdrawTooSmall   = errors.New("minimum withdrawal is 500")
	ErrWithdrawTooLarge   = errors.New("maximum withdrawal is 20000")
	ErrRequestNotFound    = errors.New("request not found")
	ErrRequestNotPending  = errors.New("request already processed")
	ErrInvalidStatus      = errors.New("invalid target status")

	ErrChannelNotFound = errors.New("channel not found")
)
