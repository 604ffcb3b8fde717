package delivery

import "errors"

var (
	ErrInvalidDeliveryID = errors.New("invalid delivery id")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidStatus     = errors.New("invalid delivery status")

	ErrDeliveryNotFound     = errors.New("delivery not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrDeliveryExists       = errors.New("active delivery for order already exists")
	ErrDeliveryNotAvailable = errors.New("delivery is no longer available")
	ErrInvalidTransition    = errors.New("invalid delivery status transition")

	ErrNotAssignedCourier = errors.New("delivery is not assigned to this courier")
	ErrForbidden          = errors.New("access to delivery denied")
)
