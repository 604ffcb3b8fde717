package courier

import "errors"

var (
	ErrInvalidCourierID = errors.New("invalid courier id")
	ErrInvalidUserID    = errors.New("invalid user id")

	ErrCourierNotFound    = errors.New("courier not found")
	ErrCourierNotApproved = errors.New("courier is not approved")
)
