package rules

import "errors"

var (
	ErrUnknownRuleKey   = errors.New("unknown rule key")
	ErrInvalidRuleValue = errors.New("invalid rule value")
	ErrInvalidAdminID   = errors.New("invalid admin id")
)
