package withdrawal

import "errors"

var (
	ErrInvalidAmount     = errors.New("withdrawal amount must be positive with at most two decimal places")
	ErrInvalidMethod     = errors.New("invalid withdrawal method")
	ErrInvalidAccountRef = errors.New("invalid account reference")
	ErrInvalidStatus     = errors.New("invalid withdrawal status")
	ErrInvalidRequestID  = errors.New("invalid withdrawal request id")

	ErrBelowMinimum        = errors.New("amount is below the minimum withdrawal")
	ErrInsufficientBalance = errors.New("insufficient available balance")

	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	ErrInvalidTransition  = errors.New("invalid withdrawal status transition")
	ErrForbidden          = errors.New("only admins can review withdrawals")
)
