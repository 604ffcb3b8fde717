package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidTotalAmount    = errors.New("invalid order total amount")
	ErrInvalidEstimate       = errors.New("invalid estimated minutes")
)
